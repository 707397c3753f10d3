package driven

import (
	"context"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
)

// ExceptionStore persists dictionary exceptions.
type ExceptionStore interface {
	// Save stores or updates an exception.
	Save(ctx context.Context, exception domain.Exception) error

	// Get retrieves an exception by ID.
	Get(ctx context.Context, id string) (*domain.Exception, error)

	// GetByRoman retrieves an exception by its exact Roman form.
	GetByRoman(ctx context.Context, roman string) (*domain.Exception, error)

	// Delete removes an exception by ID.
	Delete(ctx context.Context, id string) error

	// List returns all exceptions ordered by Roman form.
	List(ctx context.Context) ([]domain.Exception, error)

	// Count returns the number of stored exceptions.
	Count(ctx context.Context) (int, error)

	// Close releases the underlying storage.
	Close() error
}
