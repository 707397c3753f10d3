package domain

import (
	"strings"
	"time"
)

// Exception is a whole-word dictionary override. When a word token
// matches an exception's Roman form exactly, the stored Bengali is
// emitted instead of running the phonetic rules. The dictionary is
// empty by default; phonetic behaviour is unaffected until entries
// are added.
type Exception struct {
	// ID is the unique identifier for the entry.
	ID string

	// Roman is the exact word to match, case-sensitive.
	Roman string

	// Bengali is the replacement text.
	Bengali string

	// Note is an optional free-form annotation.
	Note string

	// CreatedAt is when the entry was first added.
	CreatedAt time.Time

	// UpdatedAt is when the entry was last changed.
	UpdatedAt time.Time
}

// Validate checks the entry for structural problems.
func (e Exception) Validate() error {
	if strings.TrimSpace(e.Roman) == "" {
		return ErrEmptyRoman
	}
	if strings.ContainsAny(e.Roman, " \t\n\r") {
		return ErrInvalidInput
	}
	if strings.TrimSpace(e.Bengali) == "" {
		return ErrEmptyBengali
	}
	return nil
}
