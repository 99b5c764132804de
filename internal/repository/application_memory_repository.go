package repository

import (
	"context"
	"sync"

	"laborlink/internal/domain/application"
	"laborlink/internal/pkg/logging"

	"github.com/google/uuid"
)

const applicationsSnapshotKey = "applications"

type MemoryApplicationRepository struct {
	mu     sync.RWMutex
	items  []application.Application
	snap   Snapshotter
	logger *logging.Logger
}

func NewMemoryApplicationRepository(snap Snapshotter, logger *logging.Logger) *MemoryApplicationRepository {
	if snap == nil {
		snap = noopSnapshotter{}
	}
	return &MemoryApplicationRepository{snap: snap, logger: logger}
}

func (r *MemoryApplicationRepository) Restore(ctx context.Context) (bool, error) {
	var items []application.Application
	ok, err := r.snap.Load(ctx, applicationsSnapshotKey, &items)
	if err != nil || !ok {
		return false, err
	}
	r.mu.Lock()
	r.items = items
	r.mu.Unlock()
	return true, nil
}

func (r *MemoryApplicationRepository) Create(ctx context.Context, a application.Application) (application.Application, bool, error) {
	r.mu.Lock()
	for _, it := range r.items {
		if it.JobID == a.JobID && it.WorkerID == a.WorkerID {
			r.mu.Unlock()
			return it, false, nil
		}
	}
	r.items = append(r.items, a)
	snapshot := r.copyLocked()
	r.mu.Unlock()

	r.persist(ctx, snapshot)
	return a, true, nil
}

func (r *MemoryApplicationRepository) Get(ctx context.Context, id uuid.UUID) (application.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return application.Application{}, application.ErrNotFound
}

func (r *MemoryApplicationRepository) ListByWorker(ctx context.Context, workerID uuid.UUID) ([]application.Application, error) {
	return r.filter(func(a application.Application) bool { return a.WorkerID == workerID }), nil
}

func (r *MemoryApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error) {
	return r.filter(func(a application.Application) bool { return a.JobID == jobID }), nil
}

func (r *MemoryApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) (application.Application, error) {
	r.mu.Lock()
	idx := -1
	for i := range r.items {
		if r.items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.mu.Unlock()
		return application.Application{}, application.ErrNotFound
	}
	r.items[idx].Status = status
	updated := r.items[idx]
	snapshot := r.copyLocked()
	r.mu.Unlock()

	r.persist(ctx, snapshot)
	return updated, nil
}

func (r *MemoryApplicationRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

func (r *MemoryApplicationRepository) DeleteByJob(ctx context.Context, jobID uuid.UUID) (int, error) {
	r.mu.Lock()
	kept := r.items[:0]
	removed := 0
	for _, it := range r.items {
		if it.JobID == jobID {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	r.items = kept
	snapshot := r.copyLocked()
	r.mu.Unlock()

	if removed > 0 {
		r.persist(ctx, snapshot)
	}
	return removed, nil
}

func (r *MemoryApplicationRepository) filter(keep func(application.Application) bool) []application.Application {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]application.Application, 0)
	for _, it := range r.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func (r *MemoryApplicationRepository) copyLocked() []application.Application {
	out := make([]application.Application, len(r.items))
	copy(out, r.items)
	return out
}

func (r *MemoryApplicationRepository) persist(ctx context.Context, items []application.Application) {
	if err := r.snap.Save(ctx, applicationsSnapshotKey, items); err != nil {
		r.logger.Warn("application snapshot write failed", "err", err)
	}
}
