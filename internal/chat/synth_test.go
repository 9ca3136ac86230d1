package chat

import (
	"testing"

	"buddyai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeRoadmap_JavaScript(t *testing.T) {
	p := Params{
		Goal:      "JavaScript",
		Timeline:  "3 months",
		Level:     "Beginner",
		DailyTime: "2 hours",
	}
	r := SynthesizeRoadmap(p)

	assert.Equal(t, "JavaScript Learning Path", r.Title)
	assert.Equal(t, "A beginner level roadmap to javascript in 3 months", r.Description)
	assert.Equal(t, "Learning", r.Category)
	assert.Equal(t, domain.DifficultyBeginner, r.Difficulty)
	assert.Equal(t, "3 months", r.Duration)
	assert.Equal(t, 0, r.Progress)

	// Month timelines keep five steps.
	require.Len(t, r.Steps, 5)
	assert.Equal(t, "JavaScript Fundamentals", r.Steps[0].Title)
	for _, s := range r.Steps {
		assert.NotEmpty(t, s.ID)
		assert.False(t, s.Completed)
	}
}

// Week timelines truncate the template to four steps.
func TestSynthesizeRoadmap_WeekTimelineTruncates(t *testing.T) {
	p := Params{Goal: "Python", Timeline: "2 weeks", Level: "Intermediate", DailyTime: "1 hour"}
	r := SynthesizeRoadmap(p)

	require.Len(t, r.Steps, 4)
	assert.Equal(t, "Python Basics", r.Steps[0].Title)
}

func TestSynthesizeRoadmap_GenericGoalInterpolates(t *testing.T) {
	p := Params{Goal: "watercolor painting", Timeline: "1 year", Level: "Beginner", DailyTime: "1 hour"}
	r := SynthesizeRoadmap(p)

	require.Len(t, r.Steps, 5)
	assert.Equal(t, "Foundation", r.Steps[0].Title)
	assert.Contains(t, r.Steps[0].Description, "watercolor painting")
}

func TestSelectTemplate_Priority(t *testing.T) {
	tests := []struct {
		goal  string
		first string
	}{
		{"advanced js patterns", "JavaScript Fundamentals"},
		{"React with hooks", "React Basics"},
		{"Python for data", "Python Basics"},
		{"carpentry", "Foundation"},
	}
	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			steps := selectTemplate(tt.goal)
			assert.Equal(t, tt.first, steps[0].title)
		})
	}
}
