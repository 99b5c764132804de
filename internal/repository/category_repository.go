package repository

import (
	"context"
	"sync"

	"laborlink/internal/domain/category"
	"laborlink/internal/pkg/logging"

	"github.com/google/uuid"
)

const categoriesSnapshotKey = "categories"

type MemoryCategoryRepository struct {
	mu     sync.RWMutex
	items  []category.Category
	snap   Snapshotter
	logger *logging.Logger
}

func NewMemoryCategoryRepository(snap Snapshotter, logger *logging.Logger) *MemoryCategoryRepository {
	if snap == nil {
		snap = noopSnapshotter{}
	}
	return &MemoryCategoryRepository{snap: snap, logger: logger}
}

func (r *MemoryCategoryRepository) Restore(ctx context.Context) (bool, error) {
	var items []category.Category
	ok, err := r.snap.Load(ctx, categoriesSnapshotKey, &items)
	if err != nil || !ok {
		return false, err
	}
	r.mu.Lock()
	r.items = items
	r.mu.Unlock()
	return true, nil
}

func (r *MemoryCategoryRepository) List(ctx context.Context) ([]category.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]category.Category, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryCategoryRepository) Get(ctx context.Context, id uuid.UUID) (category.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.ID == id {
			return c, nil
		}
	}
	return category.Category{}, category.ErrNotFound
}

// Save inserts c or replaces the category with the same id in place.
func (r *MemoryCategoryRepository) Save(ctx context.Context, c category.Category) error {
	r.mu.Lock()
	replaced := false
	for i := range r.items {
		if r.items[i].ID == c.ID {
			r.items[i] = c
			replaced = true
			break
		}
	}
	if !replaced {
		r.items = append(r.items, c)
	}
	snapshot := make([]category.Category, len(r.items))
	copy(snapshot, r.items)
	r.mu.Unlock()

	r.persist(ctx, snapshot)
	return nil
}

func (r *MemoryCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	kept := make([]category.Category, 0, len(r.items))
	for _, c := range r.items {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	changed := len(kept) != len(r.items)
	r.items = kept
	snapshot := make([]category.Category, len(kept))
	copy(snapshot, kept)
	r.mu.Unlock()

	if changed {
		r.persist(ctx, snapshot)
	}
	return nil
}

func (r *MemoryCategoryRepository) persist(ctx context.Context, items []category.Category) {
	if err := r.snap.Save(ctx, categoriesSnapshotKey, items); err != nil {
		r.logger.Warn("category snapshot write failed", "err", err)
	}
}
