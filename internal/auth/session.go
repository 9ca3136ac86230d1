package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Session is the locally persisted identity. A missing session file means the
// user works local-only; a user ID enables cloud sync.
type Session struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Manager reads and writes the session file.
type Manager struct {
	path string
}

// NewManager creates a Manager over the given session file path.
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// Current returns the active session, or nil when nobody is signed in.
func (m *Manager) Current() (*Session, error) {
	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session file: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing session file: %w", err)
	}
	if s.UserID == "" {
		return nil, nil
	}
	return &s, nil
}

// SignIn records the identity, replacing any previous session.
func (m *Manager) SignIn(userID, email string) (*Session, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id must not be empty")
	}
	s := &Session{UserID: userID, Email: email, CreatedAt: time.Now().UTC()}

	if err := os.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return nil, fmt.Errorf("creating session directory: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0600); err != nil {
		return nil, fmt.Errorf("writing session file: %w", err)
	}
	return s, nil
}

// SignOut removes the session file. Signing out when already signed out is
// not an error.
func (m *Manager) SignOut() error {
	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}
