package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
	"github.com/Y3454R/obadh-engine/internal/core/ports/driven"
)

// Ensure ExceptionStore implements the interface.
var _ driven.ExceptionStore = (*ExceptionStore)(nil)

// ExceptionStore is an in-memory implementation of driven.ExceptionStore.
type ExceptionStore struct {
	mu         sync.RWMutex
	exceptions map[string]domain.Exception
}

// NewExceptionStore creates a new in-memory exception store.
func NewExceptionStore() *ExceptionStore {
	return &ExceptionStore{
		exceptions: make(map[string]domain.Exception),
	}
}

// Save stores or updates an exception.
func (s *ExceptionStore) Save(_ context.Context, exception domain.Exception) error {
	if exception.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exceptions[exception.ID] = exception
	return nil
}

// Get retrieves an exception by ID.
func (s *ExceptionStore) Get(_ context.Context, id string) (*domain.Exception, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	exc, ok := s.exceptions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &exc, nil
}

// GetByRoman retrieves an exception by its exact Roman form.
func (s *ExceptionStore) GetByRoman(_ context.Context, roman string) (*domain.Exception, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, exc := range s.exceptions {
		if exc.Roman == roman {
			return &exc, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Delete removes an exception.
func (s *ExceptionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.exceptions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.exceptions, id)
	return nil
}

// List returns all exceptions ordered by Roman form.
func (s *ExceptionStore) List(_ context.Context) ([]domain.Exception, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Exception, 0, len(s.exceptions))
	for _, exc := range s.exceptions {
		result = append(result, exc)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Roman < result[j].Roman
	})
	return result, nil
}

// Count returns the number of stored exceptions.
func (s *ExceptionStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.exceptions), nil
}

// Close is a no-op for the in-memory store.
func (s *ExceptionStore) Close() error {
	return nil
}
