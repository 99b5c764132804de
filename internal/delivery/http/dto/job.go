package dto

import (
	"time"

	"laborlink/internal/domain/job"
	"laborlink/internal/matching"
	"laborlink/internal/usecase"

	"github.com/google/uuid"
)

type CreateJobRequest struct {
	Scope               string                     `json:"scope"`
	Category            string                     `json:"category"`
	Type                string                     `json:"type"`
	Salary              string                     `json:"salary"`
	ExperienceLevel     *string                    `json:"experience_level"`
	Location            string                     `json:"location"`
	Title               string                     `json:"title"`
	Description         string                     `json:"description"`
	Contact             string                     `json:"contact"`
	WorkersRequired     int                        `json:"workers_required"`
	VisaType            *string                    `json:"visa_type"`
	Accommodation       bool                       `json:"accommodation"`
	ContractPeriod      *string                    `json:"contract_period"`
	IsUrgent            bool                       `json:"is_urgent"`
	Translations        map[string]job.Translation `json:"translations"`
	GenerateDescription bool                       `json:"generate_description"`
	Locale              string                     `json:"locale"`
}

func (r CreateJobRequest) ToInput() usecase.CreateJobInput {
	return usecase.CreateJobInput{
		CreateInput: job.CreateInput{
			Scope:           job.Scope(r.Scope),
			Category:        r.Category,
			Type:            job.Type(r.Type),
			Salary:          r.Salary,
			ExperienceLevel: r.ExperienceLevel,
			Location:        r.Location,
			Title:           r.Title,
			Description:     r.Description,
			Contact:         r.Contact,
			WorkersRequired: r.WorkersRequired,
			VisaType:        r.VisaType,
			Accommodation:   r.Accommodation,
			ContractPeriod:  r.ContractPeriod,
			IsUrgent:        r.IsUrgent,
			Translations:    r.Translations,
		},
		GenerateDescription: r.GenerateDescription,
		Locale:              r.Locale,
	}
}

type JobResponse struct {
	ID              uuid.UUID `json:"id"`
	Locale          string    `json:"locale"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	Scope           job.Scope `json:"scope"`
	Category        string    `json:"category"`
	Type            job.Type  `json:"type"`
	Salary          string    `json:"salary"`
	ExperienceLevel *string   `json:"experience_level,omitempty"`
	Contact         string    `json:"contact"`
	WorkersRequired int       `json:"workers_required"`
	VisaType        *string   `json:"visa_type,omitempty"`
	Accommodation   bool      `json:"accommodation"`
	ContractPeriod  *string   `json:"contract_period,omitempty"`
	IsUrgent        bool      `json:"is_urgent"`
	IsNew           bool      `json:"is_new"`
	PostedAt        string    `json:"posted_at"`
}

func NewJobResponse(d matching.DisplayJob) JobResponse {
	return JobResponse{
		ID:              d.ID,
		Locale:          d.Locale,
		Title:           d.Title,
		Description:     d.Description,
		Location:        d.Location,
		Scope:           d.Scope,
		Category:        d.Category,
		Type:            d.Type,
		Salary:          d.Salary,
		ExperienceLevel: d.ExperienceLevel,
		Contact:         d.Contact,
		WorkersRequired: d.WorkersRequired,
		VisaType:        d.VisaType,
		Accommodation:   d.Accommodation,
		ContractPeriod:  d.ContractPeriod,
		IsUrgent:        d.IsUrgent,
		IsNew:           d.IsNew,
		PostedAt:        d.PostedAt.UTC().Format(time.RFC3339),
	}
}

func NewJobListResponse(items []matching.DisplayJob) []JobResponse {
	out := make([]JobResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewJobResponse(it))
	}
	return out
}
