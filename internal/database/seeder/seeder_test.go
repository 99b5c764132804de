package seeder_test

import (
	"context"
	"testing"
	"time"

	"laborlink/internal/database/seeder"
	"laborlink/internal/domain/job"
	"laborlink/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func targets() seeder.Targets {
	return seeder.Targets{
		Users:      repository.NewMemoryUserRepository(nil, nil),
		Categories: repository.NewMemoryCategoryRepository(nil, nil),
		Jobs:       repository.NewMemoryJobRepository(nil, nil),
	}
}

func TestLoad_EmbeddedDefaults(t *testing.T) {
	f, err := seeder.Load("")
	require.NoError(t, err)

	assert.Len(t, f.Users, 5)
	assert.Len(t, f.Categories, 8)
	assert.Len(t, f.Jobs, 3)
	for _, c := range f.Categories {
		assert.NotEmpty(t, c.Translations["hi"].Name, c.Name)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := seeder.Load("/nonexistent/seeds.yaml")
	require.Error(t, err)
}

func TestParse_PostedAgo(t *testing.T) {
	f, err := seeder.Parse([]byte("jobs:\n  - title: x\n    posted_ago: 2h\n"))
	require.NoError(t, err)
	require.Len(t, f.Jobs, 1)
	assert.Equal(t, 2*time.Hour, f.Jobs[0].PostedAgo)
}

func TestRunner_SeedsEverything(t *testing.T) {
	ctx := context.Background()
	f, err := seeder.Load("")
	require.NoError(t, err)

	tg := targets()
	r := seeder.Runner{Seeders: seeder.Defaults(f, "secret123", nil)}
	require.NoError(t, r.Run(ctx, tg))

	users, err := tg.Users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 5)

	cats, err := tg.Categories.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 8)

	jobs, err := tg.Jobs.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	for _, j := range jobs {
		assert.True(t, j.IsActive)
	}

	employer, err := tg.Users.GetByEmail(ctx, "admin@test.com")
	require.NoError(t, err)
	assert.Equal(t, employer.ID.String(), jobs[0].EmployerID)
}

func TestRunner_Idempotent(t *testing.T) {
	ctx := context.Background()
	f, err := seeder.Load("")
	require.NoError(t, err)

	tg := targets()
	r := seeder.Runner{Seeders: seeder.Defaults(f, "secret123", nil)}
	require.NoError(t, r.Run(ctx, tg))
	require.NoError(t, r.Run(ctx, tg))

	users, _ := tg.Users.List(ctx)
	cats, _ := tg.Categories.List(ctx)
	jobs, _ := tg.Jobs.List(ctx)
	assert.Len(t, users, 5)
	assert.Len(t, cats, 8)
	assert.Len(t, jobs, 3)
}

func TestUsersSeeder_SkipsWithoutPassword(t *testing.T) {
	ctx := context.Background()
	tg := targets()
	s := seeder.UsersSeeder{Users: []seeder.SeedUser{{Name: "A", Email: "a@test.com", Role: "worker"}}}

	require.NoError(t, s.Run(ctx, tg))
	users, err := tg.Users.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUsersSeeder_InvalidRole(t *testing.T) {
	tg := targets()
	s := seeder.UsersSeeder{Users: []seeder.SeedUser{{Name: "A", Email: "a@test.com", Role: "boss", Password: "pw123456"}}}
	require.Error(t, s.Run(context.Background(), tg))
}

func TestJobsSeeder_PostedAtFromAge(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	tg := targets()
	s := seeder.JobsSeeder{
		Now: func() time.Time { return now },
		Jobs: []seeder.SeedJob{{
			Employer:  "employer-1",
			Scope:     string(job.ScopeDomestic),
			Category:  "Plumber",
			Type:      string(job.TypeDaily),
			Salary:    "₹800/day",
			Location:  "Pune",
			Title:     "Plumber",
			Contact:   "+91 90000 00000",
			PostedAgo: 48 * time.Hour,
		}},
	}

	require.NoError(t, s.Run(ctx, tg))
	jobs, err := tg.Jobs.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, now.Add(-48*time.Hour), jobs[0].PostedAt)
	assert.Equal(t, "employer-1", jobs[0].EmployerID)
	assert.False(t, jobs[0].IsNew)
}

func TestJobsSeeder_InvalidJob(t *testing.T) {
	tg := targets()
	s := seeder.JobsSeeder{Jobs: []seeder.SeedJob{{Title: "broken"}}}
	require.Error(t, s.Run(context.Background(), tg))
}
