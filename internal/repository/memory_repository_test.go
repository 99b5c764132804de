package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"laborlink/internal/domain/application"
	"laborlink/internal/domain/job"
	"laborlink/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSnapshotter struct {
	mu      sync.Mutex
	data    map[string][]byte
	saves   int
	saveErr error
}

func newFakeSnapshotter() *fakeSnapshotter {
	return &fakeSnapshotter{data: map[string][]byte{}}
}

func (s *fakeSnapshotter) Load(_ context.Context, key string, out any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (s *fakeSnapshotter) Save(_ context.Context, key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.data[key] = b
	return nil
}

func validInput(title string) job.CreateInput {
	return job.CreateInput{
		EmployerID: "admin",
		Scope:      job.ScopeDomestic,
		Category:   "Construction",
		Type:       job.TypeDaily,
		Salary:     "₹600 / Day",
		Location:   "Mumbai",
		Title:      title,
		Contact:    "+919876543210",
	}
}

func TestMemoryJobRepository_CreatePrependsAndStamps(t *testing.T) {
	ctx := context.Background()
	snap := newFakeSnapshotter()
	repo := NewMemoryJobRepository(snap, nil)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	first, err := repo.Create(ctx, validInput("First"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, validInput("Second"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, first.IsActive)
	assert.True(t, first.IsNew)
	assert.Equal(t, fixed, first.PostedAt)

	jobs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, second.ID, jobs[0].ID)
	assert.Equal(t, first.ID, jobs[1].ID)
	assert.Equal(t, 2, snap.saves)
}

func TestMemoryJobRepository_CreateRejectsInvalid(t *testing.T) {
	repo := NewMemoryJobRepository(nil, nil)
	in := validInput("")
	_, err := repo.Create(context.Background(), in)
	assert.ErrorIs(t, err, job.ErrInvalidInput)

	in = validInput("x")
	in.Type = "Hourly"
	_, err = repo.Create(context.Background(), in)
	assert.ErrorIs(t, err, job.ErrInvalidInput)
}

func TestMemoryJobRepository_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	snap := newFakeSnapshotter()
	repo := NewMemoryJobRepository(snap, nil)

	j, err := repo.Create(ctx, validInput("Only"))
	require.NoError(t, err)
	savesAfterCreate := snap.saves

	require.NoError(t, repo.Delete(ctx, uuid.New()))
	jobs, _ := repo.List(ctx)
	assert.Len(t, jobs, 1)
	assert.Equal(t, savesAfterCreate, snap.saves)

	require.NoError(t, repo.Delete(ctx, j.ID))
	require.NoError(t, repo.Delete(ctx, j.ID))
	jobs, _ = repo.List(ctx)
	assert.Empty(t, jobs)

	_, err = repo.Get(ctx, j.ID)
	assert.ErrorIs(t, err, job.ErrNotFound)
}

func TestMemoryJobRepository_RestoreFromSnapshot(t *testing.T) {
	ctx := context.Background()
	snap := newFakeSnapshotter()

	src := NewMemoryJobRepository(snap, nil)
	created, err := src.Create(ctx, validInput("Persisted"))
	require.NoError(t, err)

	dst := NewMemoryJobRepository(snap, nil)
	ok, err := dst.Restore(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := dst.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Persisted", got.Title)
}

func TestMemoryJobRepository_SnapshotFailureDoesNotFailCreate(t *testing.T) {
	snap := newFakeSnapshotter()
	snap.saveErr = errors.New("down")
	repo := NewMemoryJobRepository(snap, nil)

	_, err := repo.Create(context.Background(), validInput("Still works"))
	require.NoError(t, err)
	jobs, _ := repo.List(context.Background())
	assert.Len(t, jobs, 1)
}

func TestMemoryApplicationRepository_OnePerWorkerAndJob(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryApplicationRepository(nil, nil)
	jobID, workerID := uuid.New(), uuid.New()

	a := application.Application{ID: uuid.New(), JobID: jobID, WorkerID: workerID, Status: application.StatusApplied}
	_, created, err := repo.Create(ctx, a)
	require.NoError(t, err)
	assert.True(t, created)

	dup := a
	dup.ID = uuid.New()
	existing, created, err := repo.Create(ctx, dup)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, a.ID, existing.ID)

	n, _ := repo.Count(ctx)
	assert.Equal(t, 1, n)

	updated, err := repo.UpdateStatus(ctx, a.ID, application.StatusShortlisted)
	require.NoError(t, err)
	assert.Equal(t, application.StatusShortlisted, updated.Status)

	_, err = repo.UpdateStatus(ctx, uuid.New(), application.StatusRejected)
	assert.ErrorIs(t, err, application.ErrNotFound)
}

func TestMemoryUserRepository_SnapshotKeepsPasswordHash(t *testing.T) {
	ctx := context.Background()
	snap := newFakeSnapshotter()
	repo := NewMemoryUserRepository(snap, nil)

	u := user.User{ID: uuid.New(), Email: "worker@test.com", PasswordHash: "hash", Role: user.RoleWorker}
	require.NoError(t, repo.Create(ctx, u))
	assert.ErrorIs(t, repo.Create(ctx, user.User{ID: uuid.New(), Email: "WORKER@test.com"}), user.ErrAlreadyExists)

	restored := NewMemoryUserRepository(snap, nil)
	ok, err := restored.Restore(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := restored.GetByEmail(ctx, "worker@test.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.Equal(t, user.RoleWorker, got.Role)
}

func TestMemoryUserRepository_Update(t *testing.T) {
	ctx := context.Background()
	snap := newFakeSnapshotter()
	repo := NewMemoryUserRepository(snap, nil)

	a := user.User{ID: uuid.New(), Name: "A", Email: "a@test.com", Role: user.RoleWorker}
	b := user.User{ID: uuid.New(), Name: "B", Email: "b@test.com", Role: user.RoleWorker}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	a.Name = "Anil"
	a.ProfileCompleted = true
	require.NoError(t, repo.Update(ctx, a))
	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anil", got.Name)
	assert.True(t, got.ProfileCompleted)
	assert.Equal(t, 3, snap.saves)

	b.Email = "A@test.com"
	assert.ErrorIs(t, repo.Update(ctx, b), user.ErrAlreadyExists)
	assert.ErrorIs(t, repo.Update(ctx, user.User{ID: uuid.New(), Email: "x@test.com"}), user.ErrNotFound)
}

func TestMemoryApplicationRepository_DeleteByJob(t *testing.T) {
	ctx := context.Background()
	snap := newFakeSnapshotter()
	repo := NewMemoryApplicationRepository(snap, nil)

	jobA, jobB := uuid.New(), uuid.New()
	for _, jobID := range []uuid.UUID{jobA, jobB, jobA} {
		_, _, err := repo.Create(ctx, application.Application{ID: uuid.New(), JobID: jobID, WorkerID: uuid.New()})
		require.NoError(t, err)
	}

	n, err := repo.DeleteByJob(ctx, jobA)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	restored := NewMemoryApplicationRepository(snap, nil)
	_, err = restored.Restore(ctx)
	require.NoError(t, err)
	left, err := restored.ListByJob(ctx, jobB)
	require.NoError(t, err)
	assert.Len(t, left, 1)

	n, err = repo.DeleteByJob(ctx, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, n)
}
