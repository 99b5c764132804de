package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployer Role = "employer"
	RoleWorker   Role = "worker"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployer, RoleWorker:
		return true
	default:
		return false
	}
}

// CanPostJobs reports whether the role may create job postings.
func (r Role) CanPostJobs() bool {
	return r == RoleAdmin || r == RoleEmployer
}

type User struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	Role             Role      `json:"role"`
	ProfileCompleted bool      `json:"profile_completed"`
	CreatedAt        time.Time `json:"created_at"`
}

// Actor is the authenticated caller as seen by use cases.
type Actor struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}
