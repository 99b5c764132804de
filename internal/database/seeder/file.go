package seeder

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"laborlink/internal/domain/category"
	"laborlink/internal/domain/job"

	"gopkg.in/yaml.v3"
)

//go:embed seeds.yaml
var defaultSeeds []byte

type File struct {
	Users      []SeedUser     `yaml:"users"`
	Categories []SeedCategory `yaml:"categories"`
	Jobs       []SeedJob      `yaml:"jobs"`
}

type SeedUser struct {
	ID               string `yaml:"id"`
	Name             string `yaml:"name"`
	Email            string `yaml:"email"`
	Role             string `yaml:"role"`
	Password         string `yaml:"password"`
	ProfileCompleted bool   `yaml:"profile_completed"`
}

type SeedCategory struct {
	ID           string                          `yaml:"id"`
	Name         string                          `yaml:"name"`
	Subtitle     string                          `yaml:"subtitle"`
	Icon         string                          `yaml:"icon"`
	Translations map[string]category.Translation `yaml:"translations"`
}

type SeedJob struct {
	ID              string                     `yaml:"id"`
	Employer        string                     `yaml:"employer"`
	Scope           string                     `yaml:"scope"`
	Category        string                     `yaml:"category"`
	Type            string                     `yaml:"type"`
	Salary          string                     `yaml:"salary"`
	ExperienceLevel string                     `yaml:"experience_level"`
	Location        string                     `yaml:"location"`
	Title           string                     `yaml:"title"`
	Description     string                     `yaml:"description"`
	Contact         string                     `yaml:"contact"`
	WorkersRequired int                        `yaml:"workers_required"`
	VisaType        string                     `yaml:"visa_type"`
	Accommodation   bool                       `yaml:"accommodation"`
	ContractPeriod  string                     `yaml:"contract_period"`
	IsUrgent        bool                       `yaml:"is_urgent"`
	IsNew           bool                       `yaml:"is_new"`
	PostedAgo       time.Duration              `yaml:"posted_ago"`
	Translations    map[string]job.Translation `yaml:"translations"`
}

// Load reads seeds from path, or the embedded defaults when path is empty.
func Load(path string) (File, error) {
	b := defaultSeeds
	if path != "" {
		var err error
		b, err = os.ReadFile(path)
		if err != nil {
			return File{}, fmt.Errorf("read seed file: %w", err)
		}
	}
	return Parse(b)
}

func Parse(b []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return File{}, fmt.Errorf("parse seed file: %w", err)
	}
	return f, nil
}
