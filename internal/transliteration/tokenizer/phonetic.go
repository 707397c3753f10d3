package tokenizer

import (
	"strings"
	"unicode/utf8"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
	"github.com/Y3454R/obadh-engine/internal/transliteration/definitions"
)

// TokenizeWord segments a single word into phonetic units.
//
// A first longest-match scan classifies every character against the
// definition tables; the merge passes then fold markers and neighbours
// into compound units such as conjuncts, vowelled consonants and reph
// carriers.
func (t *Tokenizer) TokenizeWord(word string) []domain.PhoneticUnit {
	return mergeUnits(t.scan(word))
}

// scan is the first segmentation phase. Markers are matched before
// consonants so that "ng", "rr", ",," and the khanda-ta backticks are
// never split into letter keys; consonants are matched before vowels,
// both longest key first.
func (t *Tokenizer) scan(word string) []domain.PhoneticUnit {
	var units []domain.PhoneticUnit
	i := 0
	for i < len(word) {
		rest := word[i:]

		// Literal "ng" always means anusvara, never n followed by g.
		if strings.HasPrefix(rest, definitions.AnusvaraMarker) {
			units = append(units, unitAt(domain.UnitTypeSpecialForm, definitions.AnusvaraMarker, i))
			i += len(definitions.AnusvaraMarker)
			continue
		}
		if strings.HasPrefix(rest, definitions.HasantMarker) {
			units = append(units, unitAt(domain.UnitTypeConsonantWithHasant, definitions.HasantMarker, i))
			i += len(definitions.HasantMarker)
			continue
		}
		if strings.HasPrefix(rest, definitions.RephMarker) {
			units = append(units, unitAt(domain.UnitTypeSpecialForm, definitions.RephMarker, i))
			i += len(definitions.RephMarker)
			continue
		}
		if marker, ok := khandaTaPrefix(rest); ok {
			units = append(units, unitAt(domain.UnitTypeSpecialForm, marker, i))
			i += len(marker)
			continue
		}
		if strings.HasPrefix(rest, definitions.ChandrabinduMarker) {
			units = append(units, unitAt(domain.UnitTypeSpecialForm, definitions.ChandrabinduMarker, i))
			i += len(definitions.ChandrabinduMarker)
			continue
		}
		if strings.HasPrefix(rest, definitions.VisargaMarker) {
			units = append(units, unitAt(domain.UnitTypeSpecialForm, definitions.VisargaMarker, i))
			i += len(definitions.VisargaMarker)
			continue
		}
		if key, ok := t.defs.LongestConsonant(rest); ok {
			units = append(units, unitAt(domain.UnitTypeConsonant, key, i))
			i += len(key)
			continue
		}
		if key, ok := t.defs.LongestVowel(rest); ok {
			typ := domain.UnitTypeVowel
			if key == definitions.TerminatorKey {
				typ = domain.UnitTypeTerminatingVowel
			}
			units = append(units, unitAt(typ, key, i))
			i += len(key)
			continue
		}
		if rest[0] >= '0' && rest[0] <= '9' {
			units = append(units, unitAt(domain.UnitTypeNumeral, rest[:1], i))
			i++
			continue
		}
		if _, ok := t.defs.Symbol(rest[:1]); ok {
			units = append(units, unitAt(domain.UnitTypeSymbol, rest[:1], i))
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(rest)
		units = append(units, unitAt(domain.UnitTypeUnknown, string(r), i))
		i += size
	}
	return units
}

// khandaTaPrefix matches a khanda-ta marker at the start of s.
func khandaTaPrefix(s string) (string, bool) {
	for _, marker := range definitions.KhandaTaMarkers {
		if strings.HasPrefix(s, marker) {
			return marker, true
		}
	}
	return "", false
}

// unitAt builds a unit at the given byte offset.
func unitAt(typ domain.UnitType, text string, pos int) domain.PhoneticUnit {
	return domain.PhoneticUnit{Type: typ, Text: text, Position: pos}
}
