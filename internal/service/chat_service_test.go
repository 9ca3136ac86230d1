package service

import (
	"context"
	"strings"
	"testing"

	"buddyai/internal/chat"
	"buddyai/internal/domain"
	"buddyai/internal/store"
	"buddyai/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatService(t *testing.T) (ChatService, *chatFixtures) {
	t.Helper()
	st := testutil.NewTestStore(t)
	roadmaps := NewRoadmapService(st)
	stats := NewStatsService(st)
	f := &chatFixtures{store: st, roadmaps: roadmaps, stats: stats}
	return NewChatService(st, roadmaps, stats, nil), f
}

type chatFixtures struct {
	store    *store.SQLiteStore
	roadmaps RoadmapService
	stats    StatsService
}

func TestChatService_RoadmapTurnPersistsEverything(t *testing.T) {
	svc, f := newChatService(t)
	ctx := context.Background()

	reply, err := svc.Send(ctx, nil,
		"Create a roadmap to learn JavaScript in 3 months, 2 hours daily, I'm a beginner")
	require.NoError(t, err)

	// Reply text keeps the summary but not the payload block.
	assert.Contains(t, reply.Text, "Roadmap Created!")
	assert.NotContains(t, reply.Text, "ROADMAP_DATA_START")

	require.NotNil(t, reply.Roadmap)
	stored, err := f.roadmaps.Get(ctx, reply.Roadmap.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Steps, 5)

	// Tasks were generated: 4 one-week steps plus a two-week final step
	// with its weekly sub-tasks.
	tasks, err := f.store.Tasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, reply.TasksCreated)
	assert.Equal(t, 7, reply.TasksCreated)

	// The turn awarded XP.
	stats, err := f.stats.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.XP)
}

func TestChatService_IncompleteRequestCreatesNothing(t *testing.T) {
	svc, f := newChatService(t)
	ctx := context.Background()

	reply, err := svc.Send(ctx, nil, "I need a roadmap")
	require.NoError(t, err)

	assert.Contains(t, reply.Text, "ROADMAP GENERATOR ACTIVATED")
	assert.Nil(t, reply.Roadmap)
	assert.Zero(t, reply.TasksCreated)

	roadmaps, err := f.roadmaps.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, roadmaps)
}

func TestChatService_ImportTurnPersistsCustomPlan(t *testing.T) {
	svc, f := newChatService(t)
	ctx := context.Background()

	plan := strings.Join([]string{
		"Here is my plan:",
		"Week 1: HTML basics",
		"Week 2: CSS styling",
		"Week 3: Build a page",
	}, "\n")
	reply, err := svc.Send(ctx, nil, plan)
	require.NoError(t, err)

	require.NotNil(t, reply.Roadmap)
	assert.Equal(t, "Custom", reply.Roadmap.Category)

	stored, err := f.roadmaps.Get(ctx, reply.Roadmap.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.Title, reply.Roadmap.Title)
}

func TestChatService_UsesConfiguredBotName(t *testing.T) {
	st := testutil.NewTestStore(t)
	settings := domain.DefaultSettings()
	settings.BotName = "Nova"
	require.NoError(t, st.SaveSettings(context.Background(), settings))

	svc := NewChatService(st, NewRoadmapService(st), NewStatsService(st), nil)
	reply, err := svc.Send(context.Background(), nil, "hello")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "I'm Nova")
}

func TestChatService_DefaultBotNameInGreeting(t *testing.T) {
	svc, _ := newChatService(t)

	reply, err := svc.Send(context.Background(), nil, "hello")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "I'm Mentor")
}

func TestChatService_GamificationOffSkipsXP(t *testing.T) {
	st := testutil.NewTestStore(t)
	settings := domain.DefaultSettings()
	settings.Gamification = false
	require.NoError(t, st.SaveSettings(context.Background(), settings))

	stats := NewStatsService(st)
	svc := NewChatService(st, NewRoadmapService(st), stats, nil)
	_, err := svc.Send(context.Background(), nil, "hello")
	require.NoError(t, err)

	got, err := stats.Get(context.Background())
	require.NoError(t, err)
	assert.Zero(t, got.XP)
}

func TestChatService_RespectsHistoryOrdering(t *testing.T) {
	svc, _ := newChatService(t)

	reply, err := svc.Send(context.Background(), []chat.Message{
		{Role: chat.RoleUser, Content: "I need some motivation"},
		{Role: chat.RoleAssistant, Content: "go go go"},
	}, "hello")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "Hey there!")
}
