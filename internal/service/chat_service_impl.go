package service

import (
	"context"

	"go.uber.org/zap"

	"buddyai/internal/chat"
	"buddyai/internal/store"
)

// chatXPAward is the XP granted for every chat turn, keeping conversations
// part of the gamification loop.
const chatXPAward = 5

type chatService struct {
	store    store.Store
	roadmaps RoadmapService
	stats    StatsService
	log      *zap.Logger
}

func NewChatService(st store.Store, roadmaps RoadmapService, stats StatsService, log *zap.Logger) ChatService {
	if log == nil {
		log = zap.NewNop()
	}
	return &chatService{store: st, roadmaps: roadmaps, stats: stats, log: log}
}

func (s *chatService) Send(ctx context.Context, history []chat.Message, text string) (*ChatReply, error) {
	settings, err := s.store.Settings(ctx)
	if err != nil {
		return nil, err
	}

	messages := append(append([]chat.Message{}, history...), chat.Message{
		Role:    chat.RoleUser,
		Content: text,
	})
	raw, err := chat.NewResponder(settings.BotName).Respond(messages)
	if err != nil {
		return nil, err
	}

	reply := &ChatReply{Text: raw}

	roadmap, found, err := chat.DecodePayload(raw)
	if found && err != nil {
		// A malformed block is shown as-is rather than dropped; the reply
		// text is still useful without the structured data.
		s.log.Warn("discarding malformed roadmap payload", zap.Error(err))
	}
	if roadmap != nil {
		if err := s.roadmaps.Create(ctx, roadmap); err != nil {
			return nil, err
		}
		tasks, err := s.roadmaps.GenerateTasks(ctx, roadmap.ID)
		if err != nil {
			return nil, err
		}
		reply.Text = chat.StripPayload(raw)
		reply.Roadmap = roadmap
		reply.TasksCreated = len(tasks)
	}

	if settings.Gamification {
		if _, err := s.stats.AddXP(ctx, chatXPAward); err != nil {
			return nil, err
		}
	}
	return reply, nil
}
