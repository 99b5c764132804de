package repository

import (
	"context"
	"strings"
	"sync"

	"laborlink/internal/domain/user"
	"laborlink/internal/pkg/logging"

	"github.com/google/uuid"
)

const usersSnapshotKey = "users"

// MemoryUserRepository keeps accounts in registration order.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	users  []user.User
	snap   Snapshotter
	logger *logging.Logger
}

func NewMemoryUserRepository(snap Snapshotter, logger *logging.Logger) *MemoryUserRepository {
	if snap == nil {
		snap = noopSnapshotter{}
	}
	return &MemoryUserRepository{snap: snap, logger: logger}
}

func (r *MemoryUserRepository) Restore(ctx context.Context) (bool, error) {
	var stored []storedUser
	ok, err := r.snap.Load(ctx, usersSnapshotKey, &stored)
	if err != nil || !ok {
		return false, err
	}
	users := make([]user.User, 0, len(stored))
	for _, s := range stored {
		u := s.User
		u.PasswordHash = s.PasswordHash
		users = append(users, u)
	}
	r.mu.Lock()
	r.users = users
	r.mu.Unlock()
	return true, nil
}

func (r *MemoryUserRepository) Create(ctx context.Context, u user.User) error {
	r.mu.Lock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			r.mu.Unlock()
			return user.ErrAlreadyExists
		}
	}
	r.users = append(r.users, u)
	snapshot := make([]user.User, len(r.users))
	copy(snapshot, r.users)
	r.mu.Unlock()

	if err := r.snap.Save(ctx, usersSnapshotKey, snapshotUsers(snapshot)); err != nil {
		r.logger.Warn("user snapshot write failed", "err", err)
	}
	return nil
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *MemoryUserRepository) List(ctx context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]user.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

// Update replaces the account with the same id. The email must stay unique.
func (r *MemoryUserRepository) Update(ctx context.Context, u user.User) error {
	r.mu.Lock()
	idx := -1
	for i, existing := range r.users {
		if existing.ID == u.ID {
			idx = i
			continue
		}
		if strings.EqualFold(existing.Email, u.Email) {
			r.mu.Unlock()
			return user.ErrAlreadyExists
		}
	}
	if idx < 0 {
		r.mu.Unlock()
		return user.ErrNotFound
	}
	r.users[idx] = u
	snapshot := make([]user.User, len(r.users))
	copy(snapshot, r.users)
	r.mu.Unlock()

	if err := r.snap.Save(ctx, usersSnapshotKey, snapshotUsers(snapshot)); err != nil {
		r.logger.Warn("user snapshot write failed", "err", err)
	}
	return nil
}

// storedUser exists because User hides its password hash from JSON.
type storedUser struct {
	user.User
	PasswordHash string `json:"password_hash"`
}

func snapshotUsers(users []user.User) []storedUser {
	out := make([]storedUser, 0, len(users))
	for _, u := range users {
		out = append(out, storedUser{User: u, PasswordHash: u.PasswordHash})
	}
	return out
}
