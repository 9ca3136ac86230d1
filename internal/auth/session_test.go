package auth

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_SignInCurrentSignOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	m := NewManager(path)

	// Nobody signed in yet.
	s, err := m.Current()
	require.NoError(t, err)
	assert.Nil(t, s)

	signed, err := m.SignIn("user-1", "u@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", signed.UserID)

	s, err = m.Current()
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "user-1", s.UserID)
	assert.Equal(t, "u@example.com", s.Email)

	require.NoError(t, m.SignOut())
	s, err = m.Current()
	require.NoError(t, err)
	assert.Nil(t, s)

	// Signing out twice is fine.
	require.NoError(t, m.SignOut())
}

func TestManager_SignInRequiresUserID(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "session.json"))
	_, err := m.SignIn("", "")
	assert.Error(t, err)
}
