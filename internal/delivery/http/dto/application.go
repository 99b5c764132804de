package dto

import (
	"time"

	"laborlink/internal/domain/application"

	"github.com/google/uuid"
)

type ApplyRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status"`
}

type ApplicationResponse struct {
	ID            uuid.UUID `json:"id"`
	JobID         uuid.UUID `json:"job_id"`
	WorkerID      uuid.UUID `json:"worker_id"`
	WorkerName    string    `json:"worker_name"`
	WorkerContact string    `json:"worker_contact,omitempty"`
	Status        string    `json:"status"`
	AppliedAt     string    `json:"applied_at"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:            a.ID,
		JobID:         a.JobID,
		WorkerID:      a.WorkerID,
		WorkerName:    a.WorkerName,
		WorkerContact: a.WorkerContact,
		Status:        string(a.Status),
		AppliedAt:     a.AppliedAt.UTC().Format(time.RFC3339),
	}
}

func NewApplicationListResponse(items []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewApplicationResponse(it))
	}
	return out
}
