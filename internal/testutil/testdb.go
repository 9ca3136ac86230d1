package testutil

import (
	"database/sql"
	"testing"

	"buddyai/internal/store"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := store.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestStore creates a SQLite-backed Store on a fresh in-memory database.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	return store.NewSQLiteStore(NewTestDB(t))
}
