package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_RoadmapRequest(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{"explicit roadmap word", "Create a roadmap to learn JavaScript in 3 months", IntentRoadmapRequest},
		{"learning path phrase", "I want a learning path for Python", IntentRoadmapRequest},
		{"goal plus timeline", "I want to learn React in 6 weeks", IntentRoadmapRequest},
		{"goal without timeline is not a request", "I want to learn guitar eventually", IntentLearning},
		{"explicit import phrase", "Here is my plan:\nWeek 1: basics", IntentRoadmapImport},
		{"week markers imply import", "Here is my schedule\nday 1: setup\nday 2: practice", IntentRoadmapImport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestClassify_KeywordCategories(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{"motivation", "I need some motivation today", IntentMotivation},
		{"productivity", "help me be more productive with my tasks", IntentProductivity},
		{"learning", "I want to improve my coding skill", IntentLearning},
		{"goal planning", "help me plan my goal for this year", IntentGoalPlanning},
		{"wellness", "I'm feeling tired and burned out", IntentWellness},
		{"career", "any tips for my next job interview", IntentCareer},
		{"greeting", "hey there", IntentGreeting},
		{"question", "what should I do first", IntentQuestion},
		{"fallback", "bananas are yellow", IntentGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

// Question detection runs before greeting, so a greeting that ends in a
// question mark routes to the question template.
func TestClassify_QuestionOutranksGreeting(t *testing.T) {
	assert.Equal(t, IntentQuestion, Classify("hi, how are you?"))
	assert.Equal(t, IntentGreeting, Classify("hello there, ready when you are"))
}
