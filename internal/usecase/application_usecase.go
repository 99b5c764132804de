package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"laborlink/internal/domain/application"
	"laborlink/internal/domain/job"
	"laborlink/internal/domain/user"
	"laborlink/internal/metrics"
	"laborlink/internal/pkg/logging"

	"github.com/google/uuid"
)

type ApplyInput struct {
	Name    string
	Contact string
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, actor user.Actor, jobID uuid.UUID, in ApplyInput) (application.Application, bool, error)
	ListMine(ctx context.Context, actor user.Actor) ([]application.Application, error)
	ListForJob(ctx context.Context, actor user.Actor, jobID uuid.UUID) ([]application.Application, error)
	SetStatus(ctx context.Context, actor user.Actor, id uuid.UUID, status application.Status) (application.Application, error)
}

type Applications struct {
	apps    application.Repository
	jobs    job.Repository
	users   user.Repository
	metrics *metrics.Metrics
	logger  *logging.Logger
	now     func() time.Time
}

func NewApplicationUsecase(apps application.Repository, jobs job.Repository, users user.Repository, m *metrics.Metrics, logger *logging.Logger) *Applications {
	return &Applications{apps: apps, jobs: jobs, users: users, metrics: m, logger: logger, now: time.Now}
}

// Apply records a worker's application. Applying twice returns the first
// application with created=false.
func (u *Applications) Apply(ctx context.Context, actor user.Actor, jobID uuid.UUID, in ApplyInput) (application.Application, bool, error) {
	if actor.Role != user.RoleWorker {
		return application.Application{}, false, ErrForbidden
	}

	j, err := u.jobs.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return application.Application{}, false, ErrNotFound
		}
		return application.Application{}, false, ErrInternal
	}
	if !j.IsActive {
		return application.Application{}, false, ErrNotFound
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		if usr, err := u.users.GetByID(ctx, actor.UserID); err == nil {
			name = usr.Name
		}
	}

	app, created, err := u.apps.Create(ctx, application.Application{
		ID:            uuid.New(),
		JobID:         j.ID,
		WorkerID:      actor.UserID,
		WorkerName:    name,
		WorkerContact: strings.TrimSpace(in.Contact),
		Status:        application.StatusApplied,
		AppliedAt:     u.now().UTC(),
	})
	if err != nil {
		u.logger.Error("create application failed", "job_id", jobID, "err", err)
		return application.Application{}, false, ErrInternal
	}

	u.metrics.Application(created)
	if created {
		u.logger.Info("application submitted", "job_id", j.ID, "worker_id", actor.UserID)
	}
	return app, created, nil
}

func (u *Applications) ListMine(ctx context.Context, actor user.Actor) ([]application.Application, error) {
	apps, err := u.apps.ListByWorker(ctx, actor.UserID)
	if err != nil {
		return nil, ErrInternal
	}
	return apps, nil
}

func (u *Applications) ListForJob(ctx context.Context, actor user.Actor, jobID uuid.UUID) ([]application.Application, error) {
	if err := u.authorizeJob(ctx, actor, jobID); err != nil {
		return nil, err
	}
	apps, err := u.apps.ListByJob(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	return apps, nil
}

// SetStatus moves an application out of Applied. Repeating the current
// decision is accepted; reversing a decision is a conflict.
func (u *Applications) SetStatus(ctx context.Context, actor user.Actor, id uuid.UUID, status application.Status) (application.Application, error) {
	if status != application.StatusShortlisted && status != application.StatusRejected {
		return application.Application{}, ErrInvalidInput
	}

	app, err := u.apps.Get(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, ErrNotFound
		}
		return application.Application{}, ErrInternal
	}
	if err := u.authorizeJob(ctx, actor, app.JobID); err != nil {
		return application.Application{}, err
	}

	if app.Status == status {
		return app, nil
	}
	if app.Status != application.StatusApplied {
		return application.Application{}, ErrConflict
	}

	updated, err := u.apps.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, ErrNotFound
		}
		return application.Application{}, ErrInternal
	}
	return updated, nil
}

// authorizeJob admits admins and the employer who posted the job.
func (u *Applications) authorizeJob(ctx context.Context, actor user.Actor, jobID uuid.UUID) error {
	if actor.Role == user.RoleAdmin {
		return nil
	}
	if actor.Role != user.RoleEmployer {
		return ErrForbidden
	}
	j, err := u.jobs.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	if j.EmployerID != actor.UserID.String() {
		return ErrForbidden
	}
	return nil
}
