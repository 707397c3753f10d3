package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
	"github.com/Y3454R/obadh-engine/internal/core/ports/driven"
	"github.com/Y3454R/obadh-engine/internal/core/ports/driving"
	"github.com/Y3454R/obadh-engine/internal/logger"
)

// Ensure DictionaryService implements the interface.
var _ driving.DictionaryService = (*DictionaryService)(nil)

// exportedException is the wire form for Import and Export.
type exportedException struct {
	Roman   string `json:"roman"`
	Bengali string `json:"bengali"`
	Note    string `json:"note,omitempty"`
}

// DictionaryService manages whole-word exceptions that override the
// phonetic rules.
type DictionaryService struct {
	store driven.ExceptionStore
	now   func() time.Time
}

// NewDictionaryService creates a new dictionary service. The store
// parameter is nil when the dictionary is disabled.
func NewDictionaryService(store driven.ExceptionStore) *DictionaryService {
	return &DictionaryService{
		store: store,
		now:   time.Now,
	}
}

// Add creates a new exception.
func (s *DictionaryService) Add(ctx context.Context, roman, bengali, note string) (*domain.Exception, error) {
	if s.store == nil {
		return nil, domain.ErrDictionaryDisabled
	}

	exc := domain.Exception{
		ID:        uuid.New().String(),
		Roman:     roman,
		Bengali:   bengali,
		Note:      note,
		CreatedAt: s.now(),
		UpdatedAt: s.now(),
	}
	if err := exc.Validate(); err != nil {
		return nil, err
	}

	// Reject duplicates on the Roman form.
	if existing, err := s.store.GetByRoman(ctx, roman); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrAlreadyExists, roman)
	}

	if err := s.store.Save(ctx, exc); err != nil {
		return nil, fmt.Errorf("save exception: %w", err)
	}

	logger.Info("Dictionary entry added: %q -> %q", exc.Roman, exc.Bengali)
	return &exc, nil
}

// Get retrieves an exception by its Roman form.
func (s *DictionaryService) Get(ctx context.Context, roman string) (*domain.Exception, error) {
	if s.store == nil {
		return nil, domain.ErrDictionaryDisabled
	}
	return s.store.GetByRoman(ctx, roman)
}

// List returns all exceptions ordered by Roman form.
func (s *DictionaryService) List(ctx context.Context) ([]domain.Exception, error) {
	if s.store == nil {
		return nil, domain.ErrDictionaryDisabled
	}
	return s.store.List(ctx)
}

// Update modifies an existing exception by ID.
func (s *DictionaryService) Update(ctx context.Context, id, roman, bengali, note string) (*domain.Exception, error) {
	if s.store == nil {
		return nil, domain.ErrDictionaryDisabled
	}

	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	exc := *existing
	if roman != "" {
		exc.Roman = roman
	}
	if bengali != "" {
		exc.Bengali = bengali
	}
	if note != "" {
		exc.Note = note
	}
	exc.UpdatedAt = s.now()

	if err := exc.Validate(); err != nil {
		return nil, err
	}

	// A renamed entry must not collide with another one.
	if exc.Roman != existing.Roman {
		if other, err := s.store.GetByRoman(ctx, exc.Roman); err == nil && other != nil && other.ID != id {
			return nil, fmt.Errorf("%w: %q", domain.ErrAlreadyExists, exc.Roman)
		}
	}

	if err := s.store.Save(ctx, exc); err != nil {
		return nil, fmt.Errorf("save exception: %w", err)
	}

	return &exc, nil
}

// Remove deletes an exception by its Roman form.
func (s *DictionaryService) Remove(ctx context.Context, roman string) error {
	if s.store == nil {
		return domain.ErrDictionaryDisabled
	}

	exc, err := s.store.GetByRoman(ctx, roman)
	if err != nil {
		return err
	}

	return s.store.Delete(ctx, exc.ID)
}

// Lookup resolves a word token against the dictionary.
func (s *DictionaryService) Lookup(ctx context.Context, word string) (string, bool) {
	if s.store == nil {
		return "", false
	}

	exc, err := s.store.GetByRoman(ctx, word)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("Dictionary lookup failed for %q: %v", word, err)
		}
		return "", false
	}

	return exc.Bengali, true
}

// Import reads exceptions as a JSON array and stores them. Existing
// Roman forms are overwritten.
func (s *DictionaryService) Import(ctx context.Context, r io.Reader) (int, error) {
	if s.store == nil {
		return 0, domain.ErrDictionaryDisabled
	}

	var entries []exportedException
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return 0, fmt.Errorf("decode import: %w", err)
	}

	imported := 0
	for _, entry := range entries {
		exc := domain.Exception{
			ID:        uuid.New().String(),
			Roman:     entry.Roman,
			Bengali:   entry.Bengali,
			Note:      entry.Note,
			CreatedAt: s.now(),
			UpdatedAt: s.now(),
		}
		if err := exc.Validate(); err != nil {
			return imported, fmt.Errorf("entry %q: %w", entry.Roman, err)
		}

		// Keep the identity of an entry that already covers this word.
		if existing, err := s.store.GetByRoman(ctx, entry.Roman); err == nil && existing != nil {
			exc.ID = existing.ID
			exc.CreatedAt = existing.CreatedAt
		}

		if err := s.store.Save(ctx, exc); err != nil {
			return imported, fmt.Errorf("save %q: %w", entry.Roman, err)
		}
		imported++
	}

	logger.Info("Dictionary import: %d entries", imported)
	return imported, nil
}

// Export writes all exceptions as a JSON array.
func (s *DictionaryService) Export(ctx context.Context, w io.Writer) error {
	if s.store == nil {
		return domain.ErrDictionaryDisabled
	}

	list, err := s.store.List(ctx)
	if err != nil {
		return err
	}

	entries := make([]exportedException, len(list))
	for i, exc := range list {
		entries[i] = exportedException{
			Roman:   exc.Roman,
			Bengali: exc.Bengali,
			Note:    exc.Note,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
