package repository

import (
	"context"
	"maps"
	"sync"

	"laborlink/internal/domain/profile"
	"laborlink/internal/pkg/logging"

	"github.com/google/uuid"
)

const (
	workerProfilesSnapshotKey   = "profiles:workers"
	employerProfilesSnapshotKey = "profiles:employers"
)

type MemoryProfileRepository struct {
	mu        sync.RWMutex
	workers   map[uuid.UUID]profile.WorkerProfile
	employers map[uuid.UUID]profile.EmployerProfile
	snap      Snapshotter
	logger    *logging.Logger
}

func NewMemoryProfileRepository(snap Snapshotter, logger *logging.Logger) *MemoryProfileRepository {
	if snap == nil {
		snap = noopSnapshotter{}
	}
	return &MemoryProfileRepository{
		workers:   map[uuid.UUID]profile.WorkerProfile{},
		employers: map[uuid.UUID]profile.EmployerProfile{},
		snap:      snap,
		logger:    logger,
	}
}

func (r *MemoryProfileRepository) Restore(ctx context.Context) (bool, error) {
	workers := map[uuid.UUID]profile.WorkerProfile{}
	okWorkers, err := r.snap.Load(ctx, workerProfilesSnapshotKey, &workers)
	if err != nil {
		return false, err
	}
	employers := map[uuid.UUID]profile.EmployerProfile{}
	okEmployers, err := r.snap.Load(ctx, employerProfilesSnapshotKey, &employers)
	if err != nil {
		return false, err
	}

	r.mu.Lock()
	if okWorkers {
		r.workers = workers
	}
	if okEmployers {
		r.employers = employers
	}
	r.mu.Unlock()
	return okWorkers || okEmployers, nil
}

func (r *MemoryProfileRepository) GetWorker(ctx context.Context, userID uuid.UUID) (profile.WorkerProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.workers[userID]
	if !ok {
		return profile.WorkerProfile{}, profile.ErrNotFound
	}
	return p, nil
}

func (r *MemoryProfileRepository) SaveWorker(ctx context.Context, p profile.WorkerProfile) error {
	r.mu.Lock()
	r.workers[p.UserID] = p
	snapshot := maps.Clone(r.workers)
	r.mu.Unlock()

	if err := r.snap.Save(ctx, workerProfilesSnapshotKey, snapshot); err != nil {
		r.logger.Warn("worker profile snapshot write failed", "err", err)
	}
	return nil
}

func (r *MemoryProfileRepository) GetEmployer(ctx context.Context, userID uuid.UUID) (profile.EmployerProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.employers[userID]
	if !ok {
		return profile.EmployerProfile{}, profile.ErrNotFound
	}
	return p, nil
}

func (r *MemoryProfileRepository) SaveEmployer(ctx context.Context, p profile.EmployerProfile) error {
	r.mu.Lock()
	r.employers[p.UserID] = p
	snapshot := maps.Clone(r.employers)
	r.mu.Unlock()

	if err := r.snap.Save(ctx, employerProfilesSnapshotKey, snapshot); err != nil {
		r.logger.Warn("employer profile snapshot write failed", "err", err)
	}
	return nil
}
