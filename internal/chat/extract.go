package chat

import (
	"fmt"
	"regexp"
	"strings"
)

// Params holds everything the synthesizer needs, extracted from a single
// utterance. Every field carries a usable default; the Has* flags record
// whether the value was actually present.
type Params struct {
	Goal      string
	Timeline  string
	Level     string
	DailyTime string

	HasTimeline  bool
	HasLevel     bool
	HasDailyTime bool
}

// Complete reports whether the utterance carried all three of timeline, level
// and daily time. Only then is a roadmap synthesized with concrete values.
func (p Params) Complete() bool {
	return p.HasTimeline && p.HasLevel && p.HasDailyTime
}

var (
	goalLearnRe  = regexp.MustCompile(`(?i)learn\s+([^.!?]+)`)
	goalBecomeRe = regexp.MustCompile(`(?i)become\s+([^.!?]+)`)
	goalMasterRe = regexp.MustCompile(`(?i)master\s+([^.!?]+)`)
	timelineRe   = regexp.MustCompile(`(?i)(\d+)\s*(week|month|day)s?`)
	levelRe      = regexp.MustCompile(`(?i)(beginner|intermediate|advanced)`)
	dailyTimeRe  = regexp.MustCompile(`(?i)(\d+)\s*(hour|min)`)
)

// ExtractGoal pulls the goal phrase out of an utterance: the text after the
// first of "learn"/"become"/"master" (checked in that order) up to the next
// sentence terminator. Absent all three it falls back to "your goal".
func ExtractGoal(text string) string {
	lower := strings.ToLower(text)

	if strings.Contains(lower, "learn") {
		if m := goalLearnRe.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
		return "your learning goal"
	}
	if strings.Contains(lower, "become") {
		if m := goalBecomeRe.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
		return "your career goal"
	}
	if strings.Contains(lower, "master") {
		if m := goalMasterRe.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
		return "your mastery goal"
	}
	return "your goal"
}

// ExtractParams extracts goal, timeline, level and daily time commitment from
// an utterance. Missing fields get hard-coded defaults so the synthesizer
// always has usable values.
func ExtractParams(text string) Params {
	p := Params{
		Goal:      ExtractGoal(text),
		Timeline:  "3 months",
		Level:     "Intermediate",
		DailyTime: "2 hours",
	}

	if m := timelineRe.FindStringSubmatch(text); m != nil {
		p.HasTimeline = true
		p.Timeline = fmt.Sprintf("%s %s%s", m[1], strings.ToLower(m[2]), plural(m[1]))
	}
	if m := levelRe.FindStringSubmatch(text); m != nil {
		p.HasLevel = true
		p.Level = strings.ToUpper(m[1][:1]) + strings.ToLower(m[1][1:])
	}
	if m := dailyTimeRe.FindStringSubmatch(text); m != nil {
		p.HasDailyTime = true
		unit := strings.ToLower(m[2])
		// Only hours pluralize; "min" stays as written.
		suffix := ""
		if unit == "hour" && m[1] != "1" {
			suffix = "s"
		}
		p.DailyTime = fmt.Sprintf("%s %s%s", m[1], unit, suffix)
	}
	return p
}

func plural(n string) string {
	if n == "1" {
		return ""
	}
	return "s"
}
