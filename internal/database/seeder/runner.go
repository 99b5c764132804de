package seeder

import (
	"context"
	"fmt"

	"laborlink/internal/pkg/logging"
)

type Runner struct {
	Seeders []Seeder
	Logger  *logging.Logger
}

func (r Runner) Run(ctx context.Context, t Targets) error {
	if t.Users == nil || t.Categories == nil || t.Jobs == nil {
		return fmt.Errorf("seed: incomplete targets")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, t); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		r.Logger.Debug("seeder finished", "seeder", s.Name())
	}
	return nil
}

// Defaults returns the seeders for f in dependency order: jobs reference
// users by email.
func Defaults(f File, defaultPassword string, logger *logging.Logger) []Seeder {
	return []Seeder{
		UsersSeeder{Users: f.Users, DefaultPassword: defaultPassword, Logger: logger},
		CategoriesSeeder{Categories: f.Categories},
		JobsSeeder{Jobs: f.Jobs},
	}
}
