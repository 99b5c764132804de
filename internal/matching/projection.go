package matching

import (
	"strings"
	"time"

	"laborlink/internal/domain/job"

	"github.com/google/uuid"
)

// DisplayJob is a job rendered for one locale.
type DisplayJob struct {
	ID              uuid.UUID
	Locale          string
	Title           string
	Description     string
	Location        string
	Scope           job.Scope
	Category        string
	Type            job.Type
	Salary          string
	ExperienceLevel *string
	Contact         string
	WorkersRequired int
	VisaType        *string
	Accommodation   bool
	ContractPeriod  *string
	IsUrgent        bool
	IsNew           bool
	PostedAt        time.Time
}

// Project renders j for locale. Each of title, description and location
// falls back to the default-locale value on its own when the override is
// missing or blank.
func Project(j job.Job, locale string) DisplayJob {
	locale = strings.ToLower(strings.TrimSpace(locale))
	tr := j.Translations[locale]

	return DisplayJob{
		ID:              j.ID,
		Locale:          locale,
		Title:           resolveField(tr.Title, j.Title),
		Description:     resolveField(tr.Description, j.Description),
		Location:        resolveField(tr.Location, j.Location),
		Scope:           j.Scope,
		Category:        j.Category,
		Type:            j.Type,
		Salary:          j.Salary,
		ExperienceLevel: j.ExperienceLevel,
		Contact:         j.Contact,
		WorkersRequired: j.WorkersRequired,
		VisaType:        j.VisaType,
		Accommodation:   j.Accommodation,
		ContractPeriod:  j.ContractPeriod,
		IsUrgent:        j.IsUrgent,
		IsNew:           j.IsNew,
		PostedAt:        j.PostedAt,
	}
}

// ProjectAll projects jobs in input order.
func ProjectAll(jobs []job.Job, locale string) []DisplayJob {
	out := make([]DisplayJob, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, Project(j, locale))
	}
	return out
}

func resolveField(override, fallback string) string {
	if strings.TrimSpace(override) == "" {
		return fallback
	}
	return override
}
