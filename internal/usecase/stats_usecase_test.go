package usecase

import (
	"context"
	"testing"

	"laborlink/internal/domain/user"
	"laborlink/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_Dashboard(t *testing.T) {
	ctx := context.Background()
	jobs := repository.NewMemoryJobRepository(nil, nil)
	users := repository.NewMemoryUserRepository(nil, nil)
	apps := repository.NewMemoryApplicationRepository(nil, nil)

	require.NoError(t, users.Create(ctx, user.User{ID: uuid.New(), Email: "w@x.io", Role: user.RoleWorker}))
	require.NoError(t, users.Create(ctx, user.User{ID: uuid.New(), Email: "e@x.io", Role: user.RoleEmployer}))

	board := NewJobBoardUsecase(jobs, apps, nil, nil, nil, nil, nil)
	in := validJobInput("Mason")
	in.IsUrgent = true
	j, err := board.CreateJob(ctx, employer, CreateJobInput{CreateInput: in})
	require.NoError(t, err)

	_, _, err = NewApplicationUsecase(apps, jobs, users, nil, nil).Apply(ctx, worker, j.ID, ApplyInput{Name: "W"})
	require.NoError(t, err)

	uc := NewStatsUsecase(users, jobs, apps)
	_, err = uc.Dashboard(ctx, employer)
	assert.ErrorIs(t, err, ErrForbidden)

	s, err := uc.Dashboard(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, DashboardStats{Users: 2, Workers: 1, Employers: 1, Jobs: 1, ActiveJobs: 1, UrgentJobs: 1, Applications: 1}, s)
}
