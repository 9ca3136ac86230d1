package domain

import "time"

// Note is a dated journal entry. Date uses YYYY-MM-DD so notes sort and
// range-filter lexicographically.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Date      string    `json:"date"`
	Mood      Mood      `json:"mood,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Outcomes  []string  `json:"outcomes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

const noteDateLayout = "2006-01-02"

// ValidNoteDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidNoteDate(s string) bool {
	_, err := time.Parse(noteDateLayout, s)
	return err == nil
}
