package job

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid job input")
	ErrNotFound     = errors.New("job not found")
)

type Scope string

const (
	ScopeDomestic      Scope = "Domestic"
	ScopeInternational Scope = "International"
)

func (s Scope) Valid() bool {
	return s == ScopeDomestic || s == ScopeInternational
}

type Type string

const (
	TypeDaily    Type = "Daily"
	TypeMonthly  Type = "Monthly"
	TypeContract Type = "Contract"
)

func (t Type) Valid() bool {
	switch t {
	case TypeDaily, TypeMonthly, TypeContract:
		return true
	default:
		return false
	}
}

// Translation is a per-locale override. Empty fields fall back to the
// default-locale value of the job.
type Translation struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Location    string `json:"location,omitempty" yaml:"location,omitempty"`
}

type Job struct {
	ID              uuid.UUID              `json:"id"`
	EmployerID      string                 `json:"employer_id"`
	Scope           Scope                  `json:"scope"`
	Category        string                 `json:"category"`
	Type            Type                   `json:"type"`
	Salary          string                 `json:"salary"`
	ExperienceLevel *string                `json:"experience_level,omitempty"`
	Location        string                 `json:"location"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Contact         string                 `json:"contact"`
	WorkersRequired int                    `json:"workers_required"`
	VisaType        *string                `json:"visa_type,omitempty"`
	Accommodation   bool                   `json:"accommodation"`
	ContractPeriod  *string                `json:"contract_period,omitempty"`
	IsUrgent        bool                   `json:"is_urgent"`
	IsNew           bool                   `json:"is_new"`
	IsActive        bool                   `json:"is_active"`
	PostedAt        time.Time              `json:"posted_at"`
	Translations    map[string]Translation `json:"translations,omitempty"`
}

// CreateInput carries everything a poster supplies. Identity, posting time
// and the active/new flags are assigned by the store.
type CreateInput struct {
	EmployerID      string
	Scope           Scope
	Category        string
	Type            Type
	Salary          string
	ExperienceLevel *string
	Location        string
	Title           string
	Description     string
	Contact         string
	WorkersRequired int
	VisaType        *string
	Accommodation   bool
	ContractPeriod  *string
	IsUrgent        bool
	Translations    map[string]Translation
}

func (in CreateInput) Validate() error {
	if !in.Scope.Valid() || !in.Type.Valid() {
		return ErrInvalidInput
	}
	for _, v := range []string{in.Title, in.Category, in.Location, in.Salary, in.Contact} {
		if strings.TrimSpace(v) == "" {
			return ErrInvalidInput
		}
	}
	if in.WorkersRequired < 0 {
		return ErrInvalidInput
	}
	return nil
}

// NewFromInput builds a fresh posting. It does not validate.
func NewFromInput(in CreateInput, now time.Time) Job {
	return Job{
		ID:              uuid.New(),
		EmployerID:      in.EmployerID,
		Scope:           in.Scope,
		Category:        strings.TrimSpace(in.Category),
		Type:            in.Type,
		Salary:          strings.TrimSpace(in.Salary),
		ExperienceLevel: trimOptional(in.ExperienceLevel),
		Location:        strings.TrimSpace(in.Location),
		Title:           strings.TrimSpace(in.Title),
		Description:     strings.TrimSpace(in.Description),
		Contact:         strings.TrimSpace(in.Contact),
		WorkersRequired: in.WorkersRequired,
		VisaType:        trimOptional(in.VisaType),
		Accommodation:   in.Accommodation,
		ContractPeriod:  trimOptional(in.ContractPeriod),
		IsUrgent:        in.IsUrgent,
		IsNew:           true,
		IsActive:        true,
		PostedAt:        now.UTC(),
		Translations:    normalizeTranslations(in.Translations),
	}
}

// normalizeTranslations lowercases locale keys so lookups by a resolved
// locale code find them. When two keys fold together the later one in
// sorted order wins.
func normalizeTranslations(in map[string]Translation) map[string]Translation {
	if len(in) == 0 {
		return nil
	}
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]Translation, len(in))
	for _, k := range keys {
		code := strings.ToLower(strings.TrimSpace(k))
		if code == "" {
			continue
		}
		out[code] = in[k]
	}
	return out
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
