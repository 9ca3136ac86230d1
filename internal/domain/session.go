package domain

import "time"

// FocusSession is one completed pomodoro interval.
type FocusSession struct {
	EndedAt  time.Time `json:"endedAt"`
	Duration int       `json:"duration"` // minutes
}
