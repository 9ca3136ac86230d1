package store

import (
	"context"

	"go.uber.org/zap"

	"buddyai/internal/domain"
)

// DualStore keeps a local store authoritative while mirroring every write to
// a remote store. Reads prefer the remote copy so a user sees their data on
// any device; any remote failure falls back to the local copy and is logged,
// never surfaced. A nil remote makes the DualStore purely local.
type DualStore struct {
	local  Store
	remote Store
	log    *zap.Logger
}

// NewDualStore creates a DualStore. remote may be nil.
func NewDualStore(local, remote Store, log *zap.Logger) *DualStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &DualStore{local: local, remote: remote, log: log}
}

var _ Store = (*DualStore)(nil)

func (d *DualStore) fallback(collection string, err error) {
	d.log.Warn("remote read failed, using local copy",
		zap.String("collection", collection), zap.Error(err))
}

func (d *DualStore) mirror(ctx context.Context, collection string, save func(context.Context) error) {
	if d.remote == nil {
		return
	}
	if err := save(ctx); err != nil {
		d.log.Warn("remote write failed, local copy retained",
			zap.String("collection", collection), zap.Error(err))
	}
}

func (d *DualStore) Tasks(ctx context.Context) ([]domain.Task, error) {
	if d.remote != nil {
		tasks, err := d.remote.Tasks(ctx)
		if err == nil {
			return tasks, nil
		}
		d.fallback("tasks", err)
	}
	return d.local.Tasks(ctx)
}

func (d *DualStore) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	if err := d.local.SaveTasks(ctx, tasks); err != nil {
		return err
	}
	d.mirror(ctx, "tasks", func(ctx context.Context) error {
		return d.remote.SaveTasks(ctx, tasks)
	})
	return nil
}

func (d *DualStore) Roadmaps(ctx context.Context) ([]domain.Roadmap, error) {
	if d.remote != nil {
		roadmaps, err := d.remote.Roadmaps(ctx)
		if err == nil {
			return roadmaps, nil
		}
		d.fallback("roadmaps", err)
	}
	return d.local.Roadmaps(ctx)
}

func (d *DualStore) SaveRoadmaps(ctx context.Context, roadmaps []domain.Roadmap) error {
	if err := d.local.SaveRoadmaps(ctx, roadmaps); err != nil {
		return err
	}
	d.mirror(ctx, "roadmaps", func(ctx context.Context) error {
		return d.remote.SaveRoadmaps(ctx, roadmaps)
	})
	return nil
}

func (d *DualStore) Notes(ctx context.Context) ([]domain.Note, error) {
	if d.remote != nil {
		notes, err := d.remote.Notes(ctx)
		if err == nil {
			return notes, nil
		}
		d.fallback("notes", err)
	}
	return d.local.Notes(ctx)
}

func (d *DualStore) SaveNotes(ctx context.Context, notes []domain.Note) error {
	if err := d.local.SaveNotes(ctx, notes); err != nil {
		return err
	}
	d.mirror(ctx, "notes", func(ctx context.Context) error {
		return d.remote.SaveNotes(ctx, notes)
	})
	return nil
}

func (d *DualStore) Sessions(ctx context.Context) ([]domain.FocusSession, error) {
	if d.remote != nil {
		sessions, err := d.remote.Sessions(ctx)
		if err == nil {
			return sessions, nil
		}
		d.fallback("sessions", err)
	}
	return d.local.Sessions(ctx)
}

func (d *DualStore) SaveSessions(ctx context.Context, sessions []domain.FocusSession) error {
	if err := d.local.SaveSessions(ctx, sessions); err != nil {
		return err
	}
	d.mirror(ctx, "sessions", func(ctx context.Context) error {
		return d.remote.SaveSessions(ctx, sessions)
	})
	return nil
}

func (d *DualStore) Stats(ctx context.Context) (*domain.Stats, error) {
	if d.remote != nil {
		stats, err := d.remote.Stats(ctx)
		if err == nil {
			return stats, nil
		}
		d.fallback("stats", err)
	}
	return d.local.Stats(ctx)
}

func (d *DualStore) SaveStats(ctx context.Context, stats *domain.Stats) error {
	if err := d.local.SaveStats(ctx, stats); err != nil {
		return err
	}
	d.mirror(ctx, "stats", func(ctx context.Context) error {
		return d.remote.SaveStats(ctx, stats)
	})
	return nil
}

func (d *DualStore) Settings(ctx context.Context) (*domain.Settings, error) {
	if d.remote != nil {
		settings, err := d.remote.Settings(ctx)
		if err == nil {
			return settings, nil
		}
		d.fallback("settings", err)
	}
	return d.local.Settings(ctx)
}

func (d *DualStore) SaveSettings(ctx context.Context, settings *domain.Settings) error {
	if err := d.local.SaveSettings(ctx, settings); err != nil {
		return err
	}
	d.mirror(ctx, "settings", func(ctx context.Context) error {
		return d.remote.SaveSettings(ctx, settings)
	})
	return nil
}
