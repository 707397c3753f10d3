// Package sanitizer validates Roman input before transliteration.
//
// The allowed set covers English letters, digits, the space and the
// ASCII punctuation and symbols the notation uses. Anything else is
// reported or stripped before the engine sees it.
package sanitizer

import (
	"fmt"
	"strings"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
)

// Sanitizer checks input against a set of allowed characters.
type Sanitizer struct {
	allowed map[rune]bool
}

// New creates a sanitizer with the default allowed character set.
func New() *Sanitizer {
	allowed := make(map[rune]bool)
	for c := 'a'; c <= 'z'; c++ {
		allowed[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		allowed[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		allowed[c] = true
	}
	for _, c := range []rune{
		' ', ',', '.', ':', ';', '!', '?', '(', ')', '[', ']', '{', '}',
		'"', '\'', '`', '-', '_', '+', '=', '/', '\\', '|', '@', '#',
		'$', '%', '^', '&', '*', '<', '>',
	} {
		allowed[c] = true
	}
	return &Sanitizer{allowed: allowed}
}

// WithAllowed adds further characters to the allowed set.
func (s *Sanitizer) WithAllowed(chars ...rune) *Sanitizer {
	for _, c := range chars {
		s.allowed[c] = true
	}
	return s
}

// Validate returns an error listing the distinct characters of input
// outside the allowed set, in first-seen order.
func (s *Sanitizer) Validate(input string) error {
	var offenders []rune
	seen := make(map[rune]bool)
	for _, c := range input {
		if !s.allowed[c] && !seen[c] {
			seen[c] = true
			offenders = append(offenders, c)
		}
	}
	if len(offenders) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %q", domain.ErrInvalidCharacters, string(offenders))
}

// Clean strips every character outside the allowed set.
func (s *Sanitizer) Clean(input string) string {
	var out strings.Builder
	out.Grow(len(input))
	for _, c := range input {
		if s.allowed[c] {
			out.WriteRune(c)
		}
	}
	return out.String()
}

// IsValid reports whether input contains only allowed characters.
func (s *Sanitizer) IsValid(input string) bool {
	for _, c := range input {
		if !s.allowed[c] {
			return false
		}
	}
	return true
}
