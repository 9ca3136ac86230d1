package domain

// Settings is the user-facing configuration. It is loaded at the application
// boundary and passed explicitly to whatever needs it; core logic never reads
// it ambiently.
type Settings struct {
	Tone          Tone     `json:"tone"`
	Gamification  bool     `json:"gamification"`
	Reminders     bool     `json:"reminders"`
	Notifications bool     `json:"notifications"`
	BotName       string   `json:"botName,omitempty"`
	ThemeColor    string   `json:"themeColor,omitempty"`
	ReminderTimes []string `json:"reminderTimes,omitempty"` // "HH:MM" 24h
}

// DefaultSettings returns the out-of-box configuration.
func DefaultSettings() *Settings {
	return &Settings{
		Tone:          ToneFriendly,
		Gamification:  true,
		Reminders:     true,
		Notifications: false,
		BotName:       "Mentor",
		ThemeColor:    "amber",
		ReminderTimes: []string{"09:00", "13:00", "18:00"},
	}
}
