// Package tokenizer segments Roman input into tokens and phonetic units.
//
// Segmentation happens in two stages. TokenizeText splits a line into
// word, whitespace, number, punctuation and symbol tokens. TokenizeWord
// then segments a word into phonetic units by longest-match scanning
// and structural merging; the merged units carry everything the
// renderer needs to emit Bengali output.
package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
	"github.com/Y3454R/obadh-engine/internal/transliteration/definitions"
)

// khandaTaBackticks extend a word ending in "t" or "T".
const khandaTaBackticks = "``"

// Tokenizer performs both segmentation stages over a shared set of
// definitions. It is stateless and safe for concurrent use.
type Tokenizer struct {
	defs *definitions.Definitions
}

// New creates a tokenizer over the given definitions.
func New(defs *definitions.Definitions) *Tokenizer {
	return &Tokenizer{defs: defs}
}

// TokenizeText splits a line into classified tokens. Concatenating the
// token texts reproduces the line exactly.
//
// Whitespace, digits and ASCII punctuation close the current word.
// Three notations extend it instead: an explicit hasant ",,", a
// chandrabindu "^" or visarga ":" mark, and the khanda-ta backticks
// after a word ending in "t" or "T".
func (t *Tokenizer) TokenizeText(text string) []domain.Token {
	var tokens []domain.Token
	var word strings.Builder
	wordStart := 0

	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, domain.Token{
				Type:     domain.TokenTypeWord,
				Text:     word.String(),
				Position: wordStart,
			})
			word.Reset()
		}
	}

	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])

		switch {
		case unicode.IsSpace(r):
			flush()
			start := i
			for i < len(text) {
				r2, s2 := utf8.DecodeRuneInString(text[i:])
				if !unicode.IsSpace(r2) {
					break
				}
				i += s2
			}
			tokens = append(tokens, domain.Token{
				Type:     domain.TokenTypeWhitespace,
				Text:     text[start:i],
				Position: start,
			})

		case r >= '0' && r <= '9':
			flush()
			start := i
			for i < len(text) && text[i] >= '0' && text[i] <= '9' {
				i++
			}
			tokens = append(tokens, domain.Token{
				Type:     domain.TokenTypeNumber,
				Text:     text[start:i],
				Position: start,
			})

		case word.Len() > 0 && strings.HasPrefix(text[i:], definitions.HasantMarker):
			word.WriteString(definitions.HasantMarker)
			i += len(definitions.HasantMarker)

		case word.Len() > 0 && (r == '^' || r == ':'):
			word.WriteByte(byte(r))
			i += size

		case strings.HasPrefix(text[i:], khandaTaBackticks) && endsInTa(&word):
			word.WriteString(khandaTaBackticks)
			i += len(khandaTaBackticks)

		case isPunctuation(r):
			flush()
			tokens = append(tokens, domain.Token{
				Type:     domain.TokenTypePunctuation,
				Text:     string(r),
				Position: i,
			})
			i += size

		case isSymbol(r):
			flush()
			tokens = append(tokens, domain.Token{
				Type:     domain.TokenTypeSymbol,
				Text:     string(r),
				Position: i,
			})
			i += size

		default:
			if word.Len() == 0 {
				wordStart = i
			}
			word.WriteRune(r)
			i += size
		}
	}
	flush()
	return tokens
}

// endsInTa reports whether the khanda-ta backticks may extend the
// current word.
func endsInTa(word *strings.Builder) bool {
	s := word.String()
	return s != "" && (s[len(s)-1] == 't' || s[len(s)-1] == 'T')
}

// isPunctuation reports whether r closes a word as punctuation.
func isPunctuation(r rune) bool {
	switch r {
	case '.', ',', ';', ':', '!', '?', '(', ')', '[', ']', '{', '}', '-', '_', '"', '\'':
		return true
	}
	return false
}

// isSymbol reports whether r closes a word as a standalone symbol.
func isSymbol(r rune) bool {
	switch r {
	case '+', '=', '/', '\\', '|', '@', '#', '$', '%', '^', '&', '*', '<', '>', '`':
		return true
	}
	return false
}
