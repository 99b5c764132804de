package usecase

import (
	"context"
	"testing"

	"laborlink/internal/domain/application"
	"laborlink/internal/domain/user"
	"laborlink/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appFixture struct {
	board *JobBoard
	uc    *Applications
	users *repository.MemoryUserRepository
}

func newApps(t *testing.T) appFixture {
	t.Helper()
	jobs := repository.NewMemoryJobRepository(nil, nil)
	users := repository.NewMemoryUserRepository(nil, nil)
	apps := repository.NewMemoryApplicationRepository(nil, nil)
	return appFixture{
		board: NewJobBoardUsecase(jobs, apps, nil, nil, nil, nil, nil),
		uc:    NewApplicationUsecase(apps, jobs, users, nil, nil),
		users: users,
	}
}

func TestApplications_ApplyIsIdempotent(t *testing.T) {
	f := newApps(t)
	ctx := context.Background()
	require.NoError(t, f.users.Create(ctx, user.User{ID: worker.UserID, Name: "Sita", Email: "sita@example.com", Role: user.RoleWorker}))

	j, err := f.board.CreateJob(ctx, employer, CreateJobInput{CreateInput: validJobInput("Mason")})
	require.NoError(t, err)

	first, created, err := f.uc.Apply(ctx, worker, j.ID, ApplyInput{Contact: "98765"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Sita", first.WorkerName)
	assert.Equal(t, application.StatusApplied, first.Status)

	again, created, err := f.uc.Apply(ctx, worker, j.ID, ApplyInput{Name: "Other"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)

	mine, err := f.uc.ListMine(ctx, worker)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestApplications_ApplyRules(t *testing.T) {
	f := newApps(t)
	ctx := context.Background()

	_, _, err := f.uc.Apply(ctx, worker, uuid.New(), ApplyInput{})
	assert.ErrorIs(t, err, ErrNotFound)

	j, err := f.board.CreateJob(ctx, employer, CreateJobInput{CreateInput: validJobInput("Mason")})
	require.NoError(t, err)
	_, _, err = f.uc.Apply(ctx, employer, j.ID, ApplyInput{})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestApplications_ListForJobAndStatus(t *testing.T) {
	f := newApps(t)
	ctx := context.Background()

	j, err := f.board.CreateJob(ctx, employer, CreateJobInput{CreateInput: validJobInput("Mason")})
	require.NoError(t, err)
	app, _, err := f.uc.Apply(ctx, worker, j.ID, ApplyInput{Name: "Sita"})
	require.NoError(t, err)

	_, err = f.uc.ListForJob(ctx, other, j.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = f.uc.ListForJob(ctx, worker, j.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	list, err := f.uc.ListForJob(ctx, employer, j.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = f.uc.SetStatus(ctx, employer, app.ID, application.StatusApplied)
	assert.ErrorIs(t, err, ErrInvalidInput)

	updated, err := f.uc.SetStatus(ctx, employer, app.ID, application.StatusShortlisted)
	require.NoError(t, err)
	assert.Equal(t, application.StatusShortlisted, updated.Status)

	same, err := f.uc.SetStatus(ctx, admin, app.ID, application.StatusShortlisted)
	require.NoError(t, err)
	assert.Equal(t, application.StatusShortlisted, same.Status)

	_, err = f.uc.SetStatus(ctx, employer, app.ID, application.StatusRejected)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = f.uc.SetStatus(ctx, admin, uuid.New(), application.StatusRejected)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApplications_RemovedWithTheirJob(t *testing.T) {
	f := newApps(t)
	ctx := context.Background()

	kept, err := f.board.CreateJob(ctx, employer, CreateJobInput{CreateInput: validJobInput("Helper")})
	require.NoError(t, err)
	gone, err := f.board.CreateJob(ctx, employer, CreateJobInput{CreateInput: validJobInput("Mason")})
	require.NoError(t, err)

	_, _, err = f.uc.Apply(ctx, worker, kept.ID, ApplyInput{Name: "Sita"})
	require.NoError(t, err)
	_, _, err = f.uc.Apply(ctx, worker, gone.ID, ApplyInput{Name: "Sita"})
	require.NoError(t, err)

	require.NoError(t, f.board.DeleteJob(ctx, employer, gone.ID))

	mine, err := f.uc.ListMine(ctx, worker)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, kept.ID, mine[0].JobID)
}
