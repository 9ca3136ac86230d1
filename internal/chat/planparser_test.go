package chat

import (
	"strings"
	"testing"

	"buddyai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooksLikePlan(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"week markers", "Week 1: HTML\nWeek 2: CSS\nWeek 3: JS", true},
		{"numbered list", "1. Setup\n2. Study\n3. Build", true},
		{"dashed list", "- Setup\n- Study\n- Build", true},
		{"too few lines", "Week 1: HTML\nWeek 2: CSS", false},
		{"no markers", "I like planning\nquite a lot\nreally", false},
		{"blank lines ignored", "Week 1: HTML\n\nWeek 2: CSS\n\nWeek 3: JS", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksLikePlan(tt.text))
		})
	}
}

func TestParseCustomPlan_WeekPlan(t *testing.T) {
	text := "Week 1: Learn HTML basics\nWeek 2: CSS styling\nWeek 3: JavaScript fundamentals\nWeek 4: Build first project"
	r := ParseCustomPlan(text)

	assert.Equal(t, "Learn HTML basics", r.Title)
	assert.Equal(t, "Custom", r.Category)
	assert.Equal(t, domain.DifficultyIntermediate, r.Difficulty)
	assert.Equal(t, "Custom roadmap with 4 steps", r.Description)

	require.Len(t, r.Steps, 4)
	assert.Equal(t, "Learn HTML basics", r.Steps[0].Title)
	assert.Equal(t, "Focus on learn html basics", r.Steps[0].Description)
	for _, s := range r.Steps {
		assert.Equal(t, "1 week", s.Duration)
		assert.NotEmpty(t, s.ID)
	}
	assert.Equal(t, "4 weeks", r.Duration)
}

func TestParseCustomPlan_ExplicitDurations(t *testing.T) {
	text := "My study plan\n1. Setup environment\n2. Study core concepts (2 weeks)\n3. Practice daily (10 days)"
	r := ParseCustomPlan(text)

	assert.Equal(t, "My study plan", r.Title)
	require.Len(t, r.Steps, 4)

	assert.Equal(t, "My study plan", r.Steps[0].Title)
	assert.Equal(t, "Setup environment", r.Steps[1].Title)
	assert.Equal(t, "Study core concepts", r.Steps[2].Title)
	assert.Equal(t, "2 weeks", r.Steps[2].Duration)
	assert.Equal(t, "Practice daily", r.Steps[3].Title)
	assert.Equal(t, "10 days", r.Steps[3].Duration)

	// 1 + 1 + 2 weeks plus 10 days rounded up to 2 weeks.
	assert.Equal(t, "6 weeks", r.Duration)
}

func TestParseCustomPlan_SkipsShortLines(t *testing.T) {
	text := "Plan for the month\nok\nWeek 1: Read the docs\nWeek 2: um\nWeek 3: Ship it!"
	r := ParseCustomPlan(text)

	// "ok" is under the raw length floor and "Week 2: um" strips to under
	// three characters; both are dropped.
	titles := make([]string, 0, len(r.Steps))
	for _, s := range r.Steps {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{"Plan for the month", "Read the docs", "Ship it!"}, titles)
}

func TestParseCustomPlan_LongTitlesTruncated(t *testing.T) {
	long := strings.Repeat("x", 70)
	text := "Step 1: " + long + "\nStep 2: second\nStep 3: third part"
	r := ParseCustomPlan(text)

	// First line is over 50 chars, so the roadmap falls back to the default
	// title.
	assert.Equal(t, "Custom Learning Plan", r.Title)

	require.Len(t, r.Steps, 3)
	assert.Equal(t, strings.Repeat("x", 60)+"...", r.Steps[0].Title)
	assert.Equal(t, strings.Repeat("x", 50)+"...", r.Steps[0].Description)
}

func TestParseCustomPlan_PlaceholderWhenNothingParses(t *testing.T) {
	r := ParseCustomPlan("hi\nok\nno")

	require.Len(t, r.Steps, 1)
	assert.Equal(t, "Getting Started", r.Steps[0].Title)
	assert.Equal(t, "Begin your custom learning journey", r.Steps[0].Description)
	assert.Equal(t, "1 week", r.Duration)
}
