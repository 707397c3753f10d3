// Package domain defines the core business entities for Obadh.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Token: A segment of input text (word, whitespace, number, punctuation)
//   - PhoneticUnit: A structural unit within a word (consonant, vowel, conjunct, ...)
//   - Report: A transliteration result with per-token analysis and timings
//   - Exception: A whole-word dictionary override
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
