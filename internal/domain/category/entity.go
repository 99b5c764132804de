package category

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("category not found")
	ErrInvalidInput = errors.New("invalid category input")
)

type Translation struct {
	Name     string `json:"name" yaml:"name"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
}

// Category is a service category. Name is the default-locale name and is
// what job postings reference.
type Category struct {
	ID           uuid.UUID              `json:"id"`
	Name         string                 `json:"name"`
	Subtitle     string                 `json:"subtitle"`
	Icon         string                 `json:"icon"`
	Translations map[string]Translation `json:"translations,omitempty"`
}

type Repository interface {
	List(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id uuid.UUID) (Category, error)
	Save(ctx context.Context, c Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}
