package chat

import "fmt"

// Message is one turn of a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Responder turns user utterances into assistant replies. Roadmap replies
// carry an embedded payload block that callers decode with DecodePayload.
type Responder struct {
	botName string
}

func NewResponder(botName string) *Responder {
	if botName == "" {
		botName = "Sara"
	}
	return &Responder{botName: botName}
}

// Respond answers the most recent user message in the conversation.
func (r *Responder) Respond(messages []Message) (string, error) {
	var text string
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == RoleUser {
			text = messages[i].Content
			break
		}
	}
	return r.respond(text)
}

func (r *Responder) respond(text string) (string, error) {
	switch Classify(text) {
	case IntentRoadmapImport:
		return r.respondImport(text)
	case IntentRoadmapRequest:
		return r.respondRoadmap(text)
	case IntentGreeting:
		return greetingMessage(r.botName), nil
	case IntentQuestion:
		return questionMessage, nil
	case IntentMotivation:
		return motivationMessage, nil
	case IntentProductivity:
		return productivityMessage, nil
	case IntentLearning:
		return learningMessage, nil
	case IntentGoalPlanning:
		return goalPlanningMessage, nil
	case IntentWellness:
		return wellnessMessage, nil
	case IntentCareer:
		return careerMessage, nil
	default:
		return genericMessage(text, r.botName), nil
	}
}

// respondRoadmap creates a roadmap only when the timeline, level, and daily
// time are all stated. Otherwise it asks for the missing details.
func (r *Responder) respondRoadmap(text string) (string, error) {
	p := ExtractParams(text)
	if !p.Complete() {
		return clarificationMessage(p.Goal), nil
	}
	roadmap := SynthesizeRoadmap(p)
	payload, err := EncodePayload(roadmap)
	if err != nil {
		return "", fmt.Errorf("encoding roadmap payload: %w", err)
	}
	return roadmapCreatedMessage(p, payload), nil
}

func (r *Responder) respondImport(text string) (string, error) {
	if !LooksLikePlan(text) {
		return importHelpMessage, nil
	}
	roadmap := ParseCustomPlan(text)
	payload, err := EncodePayload(roadmap)
	if err != nil {
		return "", fmt.Errorf("encoding roadmap payload: %w", err)
	}
	return planImportedMessage(roadmap.Title, len(roadmap.Steps), roadmap.Duration, payload), nil
}
