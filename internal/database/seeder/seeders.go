package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"laborlink/internal/domain/category"
	"laborlink/internal/domain/job"
	"laborlink/internal/domain/user"
	"laborlink/internal/pkg/logging"
	"laborlink/internal/usecase/auth"

	"github.com/google/uuid"
)

// UsersSeeder adds missing accounts. Accounts without a password in the
// seed file use DefaultPassword and are skipped when that is empty too.
type UsersSeeder struct {
	Users           []SeedUser
	DefaultPassword string
	Logger          *logging.Logger
	Now             func() time.Time
}

func (s UsersSeeder) Name() string { return "users" }

func (s UsersSeeder) Run(ctx context.Context, t Targets) error {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	for _, su := range s.Users {
		email := strings.ToLower(strings.TrimSpace(su.Email))
		if _, err := t.Users.GetByEmail(ctx, email); err == nil {
			continue
		} else if !errors.Is(err, user.ErrNotFound) {
			return err
		}

		pw := su.Password
		if pw == "" {
			pw = s.DefaultPassword
		}
		if pw == "" {
			s.Logger.Warn("seed user skipped, no password configured", "email", email)
			continue
		}

		id, err := parseSeedID(su.ID)
		if err != nil {
			return fmt.Errorf("user %s: %w", email, err)
		}
		role := user.Role(su.Role)
		if !role.Valid() {
			return fmt.Errorf("user %s: invalid role %q", email, su.Role)
		}
		hash, err := auth.HashPassword(pw)
		if err != nil {
			return err
		}

		err = t.Users.Create(ctx, user.User{
			ID:               id,
			Name:             strings.TrimSpace(su.Name),
			Email:            email,
			PasswordHash:     hash,
			Role:             role,
			ProfileCompleted: su.ProfileCompleted,
			CreatedAt:        now().UTC(),
		})
		if err != nil && !errors.Is(err, user.ErrAlreadyExists) {
			return err
		}
	}
	return nil
}

// CategoriesSeeder only runs against an empty catalogue so admin edits are
// never overwritten.
type CategoriesSeeder struct {
	Categories []SeedCategory
}

func (s CategoriesSeeder) Name() string { return "categories" }

func (s CategoriesSeeder) Run(ctx context.Context, t Targets) error {
	existing, err := t.Categories.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, sc := range s.Categories {
		id, err := parseSeedID(sc.ID)
		if err != nil {
			return fmt.Errorf("category %s: %w", sc.Name, err)
		}
		if err := t.Categories.Save(ctx, category.Category{
			ID:           id,
			Name:         sc.Name,
			Subtitle:     sc.Subtitle,
			Icon:         sc.Icon,
			Translations: sc.Translations,
		}); err != nil {
			return err
		}
	}
	return nil
}

// JobsSeeder imports the seed postings into an empty board, most recent
// first. Employer emails resolve to seeded user ids.
type JobsSeeder struct {
	Jobs []SeedJob
	Now  func() time.Time
}

func (s JobsSeeder) Name() string { return "jobs" }

func (s JobsSeeder) Run(ctx context.Context, t Targets) error {
	existing, err := t.Jobs.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 || len(s.Jobs) == 0 {
		return nil
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	boot := now().UTC()

	out := make([]job.Job, 0, len(s.Jobs))
	for _, sj := range s.Jobs {
		j, err := s.build(ctx, t, sj, boot)
		if err != nil {
			return fmt.Errorf("job %q: %w", sj.Title, err)
		}
		out = append(out, j)
	}
	return t.Jobs.Import(ctx, out)
}

func (s JobsSeeder) build(ctx context.Context, t Targets, sj SeedJob, boot time.Time) (job.Job, error) {
	id, err := parseSeedID(sj.ID)
	if err != nil {
		return job.Job{}, err
	}

	employer := sj.Employer
	if strings.Contains(employer, "@") {
		if u, err := t.Users.GetByEmail(ctx, employer); err == nil {
			employer = u.ID.String()
		}
	}

	in := job.CreateInput{
		EmployerID:      employer,
		Scope:           job.Scope(sj.Scope),
		Category:        sj.Category,
		Type:            job.Type(sj.Type),
		Salary:          sj.Salary,
		ExperienceLevel: optional(sj.ExperienceLevel),
		Location:        sj.Location,
		Title:           sj.Title,
		Description:     sj.Description,
		Contact:         sj.Contact,
		WorkersRequired: sj.WorkersRequired,
		VisaType:        optional(sj.VisaType),
		Accommodation:   sj.Accommodation,
		ContractPeriod:  optional(sj.ContractPeriod),
		IsUrgent:        sj.IsUrgent,
		Translations:    sj.Translations,
	}
	if err := in.Validate(); err != nil {
		return job.Job{}, err
	}

	j := job.NewFromInput(in, boot.Add(-sj.PostedAgo))
	j.ID = id
	j.IsNew = sj.IsNew
	return j, nil
}

func parseSeedID(raw string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.New(), nil
	}
	return uuid.Parse(raw)
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
