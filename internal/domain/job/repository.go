package job

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the ordered job record store. List returns most recent
// first. Delete of an unknown id is not an error.
type Repository interface {
	List(ctx context.Context) ([]Job, error)
	Get(ctx context.Context, id uuid.UUID) (Job, error)
	Create(ctx context.Context, in CreateInput) (Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
