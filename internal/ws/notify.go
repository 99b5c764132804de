package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreated = "created"
	ActionDeleted = "deleted"
)

type JobsUpdatedEvent struct {
	Type      string    `json:"type"`
	Action    string    `json:"action"`
	JobID     uuid.UUID `json:"job_id"`
	Timestamp string    `json:"timestamp"`
}

// NotifyJobsUpdated tells every subscriber that the board changed.
func (h *Hub) NotifyJobsUpdated(action string, jobID uuid.UUID) {
	if h == nil {
		return
	}

	evt := JobsUpdatedEvent{
		Type:      "jobs_updated",
		Action:    action,
		JobID:     jobID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		h.logger.Error("ws event encode failed", "err", err)
		return
	}

	h.Broadcast(b)
}
