package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("profile not found")
	ErrInvalidInput = errors.New("invalid profile input")
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// Documents holds links to uploaded files. IDProof is an Aadhaar or passport scan.
type Documents struct {
	Photo   string `json:"photo,omitempty"`
	IDProof string `json:"id_proof,omitempty"`
	Resume  string `json:"resume,omitempty"`
}

type WorkerProfile struct {
	UserID            uuid.UUID `json:"user_id"`
	Phone             string    `json:"phone"`
	DOB               string    `json:"dob"`
	Gender            Gender    `json:"gender"`
	Address           string    `json:"address"`
	City              string    `json:"city"`
	State             string    `json:"state"`
	Country           string    `json:"country"`
	Skills            []string  `json:"skills"`
	ExperienceYears   int       `json:"experience_years"`
	Education         string    `json:"education"`
	Languages         []string  `json:"languages"`
	PreferredLocation []string  `json:"preferred_location"`
	Documents         Documents `json:"documents"`
}

type EmployerProfile struct {
	UserID        uuid.UUID `json:"user_id"`
	CompanyName   string    `json:"company_name"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Industry      string    `json:"industry"`
}

// Repository stores at most one profile document of each kind per user.
type Repository interface {
	GetWorker(ctx context.Context, userID uuid.UUID) (WorkerProfile, error)
	SaveWorker(ctx context.Context, p WorkerProfile) error
	GetEmployer(ctx context.Context, userID uuid.UUID) (EmployerProfile, error)
	SaveEmployer(ctx context.Context, p EmployerProfile) error
}
