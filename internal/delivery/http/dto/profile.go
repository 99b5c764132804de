package dto

import (
	"laborlink/internal/domain/profile"
	"laborlink/internal/usecase"
)

// WorkerProfileRequest omits user_id; the profile always belongs to the caller.
type WorkerProfileRequest struct {
	Phone             string            `json:"phone"`
	DOB               string            `json:"dob"`
	Gender            string            `json:"gender"`
	Address           string            `json:"address"`
	City              string            `json:"city"`
	State             string            `json:"state"`
	Country           string            `json:"country"`
	Skills            []string          `json:"skills"`
	ExperienceYears   int               `json:"experience_years"`
	Education         string            `json:"education"`
	Languages         []string          `json:"languages"`
	PreferredLocation []string          `json:"preferred_location"`
	Documents         profile.Documents `json:"documents"`
}

func (r WorkerProfileRequest) ToProfile() profile.WorkerProfile {
	return profile.WorkerProfile{
		Phone:             r.Phone,
		DOB:               r.DOB,
		Gender:            profile.Gender(r.Gender),
		Address:           r.Address,
		City:              r.City,
		State:             r.State,
		Country:           r.Country,
		Skills:            r.Skills,
		ExperienceYears:   r.ExperienceYears,
		Education:         r.Education,
		Languages:         r.Languages,
		PreferredLocation: r.PreferredLocation,
		Documents:         r.Documents,
	}
}

type EmployerProfileRequest struct {
	CompanyName   string `json:"company_name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Industry      string `json:"industry"`
}

func (r EmployerProfileRequest) ToProfile() profile.EmployerProfile {
	return profile.EmployerProfile{
		CompanyName:   r.CompanyName,
		ContactPerson: r.ContactPerson,
		Phone:         r.Phone,
		Address:       r.Address,
		Industry:      r.Industry,
	}
}

type ProfileDocumentResponse struct {
	Role     string                   `json:"role"`
	Worker   *profile.WorkerProfile   `json:"worker,omitempty"`
	Employer *profile.EmployerProfile `json:"employer,omitempty"`
}

func NewProfileDocumentResponse(d usecase.ProfileDocument) ProfileDocumentResponse {
	return ProfileDocumentResponse{Role: string(d.Role), Worker: d.Worker, Employer: d.Employer}
}
