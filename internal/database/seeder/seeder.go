package seeder

import (
	"context"

	"laborlink/internal/domain/category"
	"laborlink/internal/domain/job"
	"laborlink/internal/domain/user"
)

// JobImporter is the part of a job store that seeding needs: it must keep
// the ids and posting times of imported jobs.
type JobImporter interface {
	List(ctx context.Context) ([]job.Job, error)
	Import(ctx context.Context, jobs []job.Job) error
}

// Targets are the stores a seeder writes into.
type Targets struct {
	Users      user.Repository
	Categories category.Repository
	Jobs       JobImporter
}

type Seeder interface {
	Name() string
	Run(ctx context.Context, t Targets) error
}
