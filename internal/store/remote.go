package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"buddyai/internal/domain"
)

// RemoteStore implements Store against the sync service's per-user REST
// collections. Each collection lives at /users/{id}/{collection} and is
// exchanged as a whole JSON document, mirroring the local replacement writes.
type RemoteStore struct {
	baseURL string
	userID  string
	client  *http.Client
}

// NewRemoteStore creates a RemoteStore for one user.
func NewRemoteStore(baseURL, userID string) *RemoteStore {
	return &RemoteStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		userID:  userID,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

var _ Store = (*RemoteStore)(nil)

func (r *RemoteStore) url(collection string) string {
	return fmt.Sprintf("%s/users/%s/%s", r.baseURL, r.userID, collection)
}

// get fetches a collection into v. A 404 means the user has never synced
// this collection; v is left at its zero value.
func (r *RemoteStore) get(ctx context.Context, collection string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url(collection), nil)
	if err != nil {
		return fmt.Errorf("building %s request: %w", collection, err)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", collection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: unexpected status %s", collection, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", collection, err)
	}
	return nil
}

func (r *RemoteStore) put(ctx context.Context, collection string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", collection, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, r.url(collection), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("building %s request: %w", collection, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("uploading %s: %w", collection, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("uploading %s: unexpected status %s", collection, resp.Status)
	}
	return nil
}

func (r *RemoteStore) Tasks(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := r.get(ctx, "tasks", &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *RemoteStore) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	return r.put(ctx, "tasks", tasks)
}

func (r *RemoteStore) Roadmaps(ctx context.Context) ([]domain.Roadmap, error) {
	var roadmaps []domain.Roadmap
	if err := r.get(ctx, "roadmaps", &roadmaps); err != nil {
		return nil, err
	}
	return roadmaps, nil
}

func (r *RemoteStore) SaveRoadmaps(ctx context.Context, roadmaps []domain.Roadmap) error {
	return r.put(ctx, "roadmaps", roadmaps)
}

func (r *RemoteStore) Notes(ctx context.Context) ([]domain.Note, error) {
	var notes []domain.Note
	if err := r.get(ctx, "notes", &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *RemoteStore) SaveNotes(ctx context.Context, notes []domain.Note) error {
	return r.put(ctx, "notes", notes)
}

func (r *RemoteStore) Sessions(ctx context.Context) ([]domain.FocusSession, error) {
	var sessions []domain.FocusSession
	if err := r.get(ctx, "sessions", &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *RemoteStore) SaveSessions(ctx context.Context, sessions []domain.FocusSession) error {
	return r.put(ctx, "sessions", sessions)
}

func (r *RemoteStore) Stats(ctx context.Context) (*domain.Stats, error) {
	stats := domain.NewStats()
	if err := r.get(ctx, "stats", stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *RemoteStore) SaveStats(ctx context.Context, stats *domain.Stats) error {
	return r.put(ctx, "stats", stats)
}

func (r *RemoteStore) Settings(ctx context.Context) (*domain.Settings, error) {
	settings := domain.DefaultSettings()
	if err := r.get(ctx, "settings", settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *RemoteStore) SaveSettings(ctx context.Context, settings *domain.Settings) error {
	return r.put(ctx, "settings", settings)
}
