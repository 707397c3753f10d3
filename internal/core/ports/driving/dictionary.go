package driving

import (
	"context"
	"io"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
)

// DictionaryService manages whole-word exceptions that override the
// phonetic rules.
type DictionaryService interface {
	// Add creates a new exception.
	Add(ctx context.Context, roman, bengali, note string) (*domain.Exception, error)

	// Get retrieves an exception by its Roman form.
	Get(ctx context.Context, roman string) (*domain.Exception, error)

	// List returns all exceptions ordered by Roman form.
	List(ctx context.Context) ([]domain.Exception, error)

	// Update modifies an existing exception by ID.
	Update(ctx context.Context, id, roman, bengali, note string) (*domain.Exception, error)

	// Remove deletes an exception by its Roman form.
	Remove(ctx context.Context, roman string) error

	// Lookup resolves a word token against the dictionary. It returns
	// the Bengali override, or ok false when no exception matches.
	Lookup(ctx context.Context, word string) (string, bool)

	// Import reads exceptions as a JSON array and stores them.
	// Existing Roman forms are overwritten. It returns the number of
	// imported entries.
	Import(ctx context.Context, r io.Reader) (int, error)

	// Export writes all exceptions as a JSON array.
	Export(ctx context.Context, w io.Writer) error
}
