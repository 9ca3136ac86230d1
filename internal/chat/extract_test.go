package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractGoal(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"learn phrase", "I want to learn Spanish grammar", "Spanish grammar"},
		{"learn stops at sentence end", "Help me learn Rust. Also other stuff", "Rust"},
		{"become phrase", "I want to become a data scientist", "a data scientist"},
		{"master phrase", "Help me master public speaking", "public speaking"},
		{"learn outranks become", "learn to become confident", "to become confident"},
		{"no goal verb", "give me something to do", "your goal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractGoal(tt.text))
		})
	}
}

func TestExtractParams_AllPresent(t *testing.T) {
	p := ExtractParams("Create a roadmap to learn JavaScript in 3 months, 2 hours daily, I'm a beginner")

	assert.True(t, p.Complete())
	assert.Equal(t, "3 months", p.Timeline)
	assert.Equal(t, "Beginner", p.Level)
	assert.Equal(t, "2 hours", p.DailyTime)
	assert.Contains(t, p.Goal, "JavaScript")
}

func TestExtractParams_DefaultsWhenMissing(t *testing.T) {
	p := ExtractParams("I want a roadmap to learn guitar")

	assert.False(t, p.Complete())
	assert.False(t, p.HasTimeline)
	assert.False(t, p.HasLevel)
	assert.False(t, p.HasDailyTime)
	assert.Equal(t, "3 months", p.Timeline)
	assert.Equal(t, "Intermediate", p.Level)
	assert.Equal(t, "2 hours", p.DailyTime)
	assert.Equal(t, "guitar", p.Goal)
}

func TestExtractParams_SingularUnits(t *testing.T) {
	p := ExtractParams("learn typing in 1 week, advanced, 1 hour per day")

	assert.Equal(t, "1 week", p.Timeline)
	assert.Equal(t, "Advanced", p.Level)
	assert.Equal(t, "1 hour", p.DailyTime)
}

// "min" durations keep the unit exactly as matched, without pluralizing.
func TestExtractParams_MinutesUnit(t *testing.T) {
	p := ExtractParams("learn chess in 2 weeks, beginner, 30 min a day")

	assert.True(t, p.Complete())
	assert.Equal(t, "2 weeks", p.Timeline)
	assert.Equal(t, "30 min", p.DailyTime)
}
