package chat

import "strings"

// Intent is the discrete category assigned to a user utterance. It selects
// which response template the responder uses.
type Intent string

const (
	IntentRoadmapRequest Intent = "roadmap-request"
	IntentRoadmapImport  Intent = "roadmap-import"
	IntentQuestion       Intent = "question"
	IntentGreeting       Intent = "greeting"
	IntentMotivation     Intent = "motivation"
	IntentProductivity   Intent = "productivity"
	IntentLearning       Intent = "learning"
	IntentGoalPlanning   Intent = "goal-planning"
	IntentWellness       Intent = "wellness"
	IntentCareer         Intent = "career"
	IntentGeneric        Intent = "generic"
)

var roadmapKeywords = []string{
	"roadmap", "learning path", "study plan", "curriculum", "course outline",
	"step by step", "how to learn", "learning guide", "plan to", "path to",
}

var goalKeywords = []string{"learn", "master", "become", "get good at", "understand", "study"}

var timeKeywords = []string{"week", "month", "day", "timeline", "schedule"}

var importKeywords = []string{
	"here is my plan", "paste this plan", "import this", "use this roadmap", "follow this plan",
}

var questionStarters = []string{"how", "what", "why", "when", "where"}

var greetingPrefixes = []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening"}

// Keyword bags for the general categories, evaluated after the roadmap and
// conversational intents.
var (
	motivationWords   = []string{"motivat", "encourag", "inspire"}
	productivityWords = []string{"task", "productive", "focus"}
	learningWords     = []string{"learn", "skill", "study"}
	goalWords         = []string{"goal", "plan", "achieve"}
	wellnessWords     = []string{"tired", "stress", "burnout", "break", "rest", "overwhelm"}
	careerWords       = []string{"career", "job", "interview", "resume", "promotion"}
)

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// isRoadmapRequest matches direct roadmap phrasing, or a goal verb combined
// with a time unit ("learn X in 3 months").
func isRoadmapRequest(lower string) bool {
	if containsAny(lower, roadmapKeywords) {
		return true
	}
	return containsAny(lower, goalKeywords) && containsAny(lower, timeKeywords)
}

// isRoadmapImport matches explicit import phrasing, or the "Day 1: ..." shape
// of a pasted plan.
func isRoadmapImport(lower string) bool {
	if containsAny(lower, importKeywords) {
		return true
	}
	return strings.Contains(lower, "day") && strings.Contains(lower, ":")
}

func isQuestion(lower string) bool {
	if strings.Contains(lower, "?") {
		return true
	}
	trimmed := strings.TrimSpace(lower)
	for _, w := range questionStarters {
		if strings.HasPrefix(trimmed, w) {
			return true
		}
	}
	return false
}

func isGreeting(lower string) bool {
	trimmed := strings.TrimSpace(lower)
	for _, p := range greetingPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

// classifiers is the ordered predicate list. Roadmap intents deliberately
// outrank the keyword categories, so "create a motivating study plan" still
// routes to roadmap-request. First match wins.
var classifiers = []struct {
	match  func(string) bool
	intent Intent
}{
	{isRoadmapRequest, IntentRoadmapRequest},
	{isRoadmapImport, IntentRoadmapImport},
	{isQuestion, IntentQuestion},
	{isGreeting, IntentGreeting},
	{func(s string) bool { return containsAny(s, motivationWords) }, IntentMotivation},
	{func(s string) bool { return containsAny(s, productivityWords) }, IntentProductivity},
	{func(s string) bool { return containsAny(s, learningWords) }, IntentLearning},
	{func(s string) bool { return containsAny(s, goalWords) }, IntentGoalPlanning},
	{func(s string) bool { return containsAny(s, wellnessWords) }, IntentWellness},
	{func(s string) bool { return containsAny(s, careerWords) }, IntentCareer},
}

// Classify assigns an intent to a raw utterance.
func Classify(text string) Intent {
	lower := strings.ToLower(text)
	for _, c := range classifiers {
		if c.match(lower) {
			return c.intent
		}
	}
	return IntentGeneric
}
