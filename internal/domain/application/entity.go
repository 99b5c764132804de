package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("application not found")
	ErrInvalidStatus = errors.New("invalid application status")
)

type Status string

const (
	StatusApplied     Status = "Applied"
	StatusShortlisted Status = "Shortlisted"
	StatusRejected    Status = "Rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusShortlisted, StatusRejected:
		return true
	default:
		return false
	}
}

type Application struct {
	ID            uuid.UUID `json:"id"`
	JobID         uuid.UUID `json:"job_id"`
	WorkerID      uuid.UUID `json:"worker_id"`
	WorkerName    string    `json:"worker_name"`
	WorkerContact string    `json:"worker_contact"`
	Status        Status    `json:"status"`
	AppliedAt     time.Time `json:"applied_at"`
}

// Repository keeps applications in insertion order. Create reports
// created=false and returns the existing record when the worker already
// applied to the job. DeleteByJob drops every application to a job when the
// job is removed.
type Repository interface {
	Create(ctx context.Context, a Application) (Application, bool, error)
	Get(ctx context.Context, id uuid.UUID) (Application, error)
	ListByWorker(ctx context.Context, workerID uuid.UUID) ([]Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (Application, error)
	Count(ctx context.Context) (int, error)
	DeleteByJob(ctx context.Context, jobID uuid.UUID) (int, error)
}
