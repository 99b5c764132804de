package repository

import (
	"context"
	"sync"
	"time"

	"laborlink/internal/domain/job"
	"laborlink/internal/pkg/logging"

	"github.com/google/uuid"
)

const jobsSnapshotKey = "jobs"

// MemoryJobRepository holds postings most recent first and mirrors every
// change to its Snapshotter. A failed mirror write is logged, not returned:
// the in-memory collection stays authoritative.
type MemoryJobRepository struct {
	mu     sync.RWMutex
	jobs   []job.Job
	snap   Snapshotter
	logger *logging.Logger
	now    func() time.Time
}

func NewMemoryJobRepository(snap Snapshotter, logger *logging.Logger) *MemoryJobRepository {
	if snap == nil {
		snap = noopSnapshotter{}
	}
	return &MemoryJobRepository{snap: snap, logger: logger, now: time.Now}
}

// Restore replaces the collection with the last snapshot, if any.
func (r *MemoryJobRepository) Restore(ctx context.Context) (bool, error) {
	var jobs []job.Job
	ok, err := r.snap.Load(ctx, jobsSnapshotKey, &jobs)
	if err != nil || !ok {
		return false, err
	}
	r.mu.Lock()
	r.jobs = jobs
	r.mu.Unlock()
	return true, nil
}

// Import appends fully formed jobs, keeping their ids and timestamps.
func (r *MemoryJobRepository) Import(ctx context.Context, jobs []job.Job) error {
	r.mu.Lock()
	r.jobs = append(r.jobs, jobs...)
	snapshot := r.copyLocked()
	r.mu.Unlock()

	r.persist(ctx, snapshot)
	return nil
}

func (r *MemoryJobRepository) List(ctx context.Context) ([]job.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.copyLocked(), nil
}

func (r *MemoryJobRepository) Get(ctx context.Context, id uuid.UUID) (job.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, j := range r.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, job.ErrNotFound
}

func (r *MemoryJobRepository) Create(ctx context.Context, in job.CreateInput) (job.Job, error) {
	if err := in.Validate(); err != nil {
		return job.Job{}, err
	}
	j := job.NewFromInput(in, r.now())

	r.mu.Lock()
	r.jobs = append([]job.Job{j}, r.jobs...)
	snapshot := r.copyLocked()
	r.mu.Unlock()

	r.persist(ctx, snapshot)
	return j, nil
}

func (r *MemoryJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	kept := r.jobs[:0:0]
	for _, j := range r.jobs {
		if j.ID != id {
			kept = append(kept, j)
		}
	}
	changed := len(kept) != len(r.jobs)
	r.jobs = kept
	snapshot := r.copyLocked()
	r.mu.Unlock()

	if changed {
		r.persist(ctx, snapshot)
	}
	return nil
}

func (r *MemoryJobRepository) copyLocked() []job.Job {
	out := make([]job.Job, len(r.jobs))
	copy(out, r.jobs)
	return out
}

func (r *MemoryJobRepository) persist(ctx context.Context, jobs []job.Job) {
	if err := r.snap.Save(ctx, jobsSnapshotKey, jobs); err != nil {
		r.logger.Warn("job snapshot write failed", "err", err)
	}
}
