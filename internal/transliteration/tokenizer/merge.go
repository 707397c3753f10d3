package tokenizer

import (
	"github.com/Y3454R/obadh-engine/internal/core/domain"
	"github.com/Y3454R/obadh-engine/internal/transliteration/definitions"
)

// mergePass rewrites a unit slice left to right into a fresh slice and
// reports whether it changed anything.
type mergePass func([]domain.PhoneticUnit) ([]domain.PhoneticUnit, bool)

// mergePasses run in order inside every cycle. Earlier passes bind
// tighter: reph and explicit hasant claim their neighbours before
// implicit conjuncts form, and vowels attach only after the consonant
// structure is settled.
var mergePasses = []mergePass{
	mergeVocalicR,
	mergeReph,
	mergeExplicitConjuncts,
	mergeImplicitConjuncts,
	mergeVowelCarriers,
	mergeLeadingConsonants,
	mergeChandrabindu,
}

// mergeUnits runs the merge passes until none of them changes the
// slice. Every merge shortens the slice, so the loop terminates.
func mergeUnits(units []domain.PhoneticUnit) []domain.PhoneticUnit {
	for {
		changed := false
		for _, pass := range mergePasses {
			var c bool
			units, c = pass(units)
			changed = changed || c
		}
		if !changed {
			return units
		}
	}
}

// mergeVocalicR folds the reph marker and a following "i" into the
// vocalic r vowel, so "rri" behaves as a single vowel key.
func mergeVocalicR(in []domain.PhoneticUnit) ([]domain.PhoneticUnit, bool) {
	out := make([]domain.PhoneticUnit, 0, len(in))
	changed := false
	for i := 0; i < len(in); i++ {
		u := in[i]
		if u.Type == domain.UnitTypeSpecialForm && u.Text == definitions.RephMarker &&
			i+1 < len(in) && in[i+1].Type == domain.UnitTypeVowel && in[i+1].Text == "i" {
			out = append(out, domain.PhoneticUnit{
				Type:     domain.UnitTypeVowel,
				Text:     u.Text + in[i+1].Text,
				Position: u.Position,
			})
			i++
			changed = true
			continue
		}
		out = append(out, u)
	}
	return out, changed
}

// mergeReph attaches the reph marker to the consonant unit after it.
func mergeReph(in []domain.PhoneticUnit) ([]domain.PhoneticUnit, bool) {
	out := make([]domain.PhoneticUnit, 0, len(in))
	changed := false
	for i := 0; i < len(in); i++ {
		u := in[i]
		if u.Type == domain.UnitTypeSpecialForm && u.Text == definitions.RephMarker && i+1 < len(in) {
			var merged domain.UnitType
			switch in[i+1].Type {
			case domain.UnitTypeConsonant:
				merged = domain.UnitTypeRephOverConsonant
			case domain.UnitTypeConsonantWithVowel:
				merged = domain.UnitTypeRephOverConsonantWithVowel
			case domain.UnitTypeConsonantWithTerminator:
				merged = domain.UnitTypeRephOverConsonantWithTerminator
			}
			if merged != "" {
				out = append(out, domain.PhoneticUnit{
					Type:     merged,
					Text:     u.Text + in[i+1].Text,
					Position: u.Position,
				})
				i++
				changed = true
				continue
			}
		}
		out = append(out, u)
	}
	return out, changed
}

// mergeExplicitConjuncts joins consonants written with the explicit
// ",," hasant into conjunct units, extending the conjunct while more
// members follow. A trailing hasant after a conjunct is absorbed.
func mergeExplicitConjuncts(in []domain.PhoneticUnit) ([]domain.PhoneticUnit, bool) {
	out := make([]domain.PhoneticUnit, 0, len(in))
	changed := false
	for i := 0; i < len(in); i++ {
		u := in[i]
		if u.Type == domain.UnitTypeConsonantWithHasant && len(out) > 0 {
			tail := out[len(out)-1]
			if tail.Type.IsConsonantLike() && i+1 < len(in) && in[i+1].Type == domain.UnitTypeConsonant {
				tail.Type = domain.UnitTypeConjunct
				tail.Text += definitions.HasantMarker + in[i+1].Text
				out[len(out)-1] = tail
				i++
				changed = true
				continue
			}
			if tail.Type == domain.UnitTypeConjunct {
				// Trailing hasant adds nothing to a finished conjunct.
				changed = true
				continue
			}
		}
		out = append(out, u)
	}
	return out, changed
}

// mergeImplicitConjuncts joins adjacent bare consonants into a
// conjunct. An existing conjunct takes a further member implicitly
// only when that member is "r", which attaches as a ro-fola; any
// other extension needs the explicit hasant.
func mergeImplicitConjuncts(in []domain.PhoneticUnit) ([]domain.PhoneticUnit, bool) {
	out := make([]domain.PhoneticUnit, 0, len(in))
	changed := false
	for i := 0; i < len(in); i++ {
		u := in[i]
		if u.Type == domain.UnitTypeConsonant && len(out) > 0 {
			tail := out[len(out)-1]
			if tail.Type == domain.UnitTypeConsonant ||
				(tail.Type == domain.UnitTypeConjunct && u.Text == "r") {
				tail.Type = domain.UnitTypeConjunct
				tail.Text += definitions.HasantMarker + u.Text
				out[len(out)-1] = tail
				changed = true
				continue
			}
		}
		out = append(out, u)
	}
	return out, changed
}

// mergeVowelCarriers attaches a vowel or the terminating vowel to the
// consonant, conjunct or reph unit before it.
func mergeVowelCarriers(in []domain.PhoneticUnit) ([]domain.PhoneticUnit, bool) {
	out := make([]domain.PhoneticUnit, 0, len(in))
	changed := false
	for i := 0; i < len(in); i++ {
		u := in[i]
		if len(out) > 0 && (u.Type == domain.UnitTypeVowel || u.Type == domain.UnitTypeTerminatingVowel) {
			tail := out[len(out)-1]
			if merged, ok := vowelCarrier(tail.Type, u.Type); ok {
				tail.Type = merged
				tail.Text += u.Text
				out[len(out)-1] = tail
				changed = true
				continue
			}
		}
		out = append(out, u)
	}
	return out, changed
}

// mergeLeadingConsonants folds a bare consonant into the vowelled
// consonant after it, forming a vowelled conjunct.
func mergeLeadingConsonants(in []domain.PhoneticUnit) ([]domain.PhoneticUnit, bool) {
	out := make([]domain.PhoneticUnit, 0, len(in))
	changed := false
	for i := 0; i < len(in); i++ {
		u := in[i]
		if u.Type == domain.UnitTypeConsonant && i+1 < len(in) {
			var merged domain.UnitType
			switch in[i+1].Type {
			case domain.UnitTypeConsonantWithVowel:
				merged = domain.UnitTypeConjunctWithVowel
			case domain.UnitTypeConsonantWithTerminator:
				merged = domain.UnitTypeConjunctWithTerminator
			}
			if merged != "" {
				out = append(out, domain.PhoneticUnit{
					Type:     merged,
					Text:     u.Text + definitions.HasantMarker + in[i+1].Text,
					Position: u.Position,
				})
				i++
				changed = true
				continue
			}
		}
		out = append(out, u)
	}
	return out, changed
}

// mergeChandrabindu fuses the "^" marker onto the unit before it.
func mergeChandrabindu(in []domain.PhoneticUnit) ([]domain.PhoneticUnit, bool) {
	out := make([]domain.PhoneticUnit, 0, len(in))
	changed := false
	for i := 0; i < len(in); i++ {
		u := in[i]
		if u.Type == domain.UnitTypeSpecialForm && u.Text == definitions.ChandrabinduMarker && len(out) > 0 {
			tail := out[len(out)-1]
			if merged, ok := chandrabinduCarrier(tail.Type); ok {
				tail.Type = merged
				tail.Text += u.Text
				out[len(out)-1] = tail
				changed = true
				continue
			}
		}
		out = append(out, u)
	}
	return out, changed
}

// vowelCarrier maps a bare unit type to its vowelled counterpart.
func vowelCarrier(base, vowel domain.UnitType) (domain.UnitType, bool) {
	terminator := vowel == domain.UnitTypeTerminatingVowel
	switch base {
	case domain.UnitTypeConsonant:
		if terminator {
			return domain.UnitTypeConsonantWithTerminator, true
		}
		return domain.UnitTypeConsonantWithVowel, true
	case domain.UnitTypeConjunct:
		if terminator {
			return domain.UnitTypeConjunctWithTerminator, true
		}
		return domain.UnitTypeConjunctWithVowel, true
	case domain.UnitTypeRephOverConsonant:
		if terminator {
			return domain.UnitTypeRephOverConsonantWithTerminator, true
		}
		return domain.UnitTypeRephOverConsonantWithVowel, true
	}
	return "", false
}

// chandrabinduCarrier maps a unit type to its nasalised counterpart.
func chandrabinduCarrier(base domain.UnitType) (domain.UnitType, bool) {
	switch base {
	case domain.UnitTypeConsonant:
		return domain.UnitTypeChandrabinduWithConsonant, true
	case domain.UnitTypeVowel, domain.UnitTypeTerminatingVowel:
		return domain.UnitTypeChandrabinduWithVowel, true
	case domain.UnitTypeConsonantWithVowel, domain.UnitTypeConsonantWithTerminator:
		return domain.UnitTypeChandrabinduWithConsonantAndVowel, true
	}
	return "", false
}
