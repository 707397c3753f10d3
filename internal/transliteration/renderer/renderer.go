// Package renderer turns phonetic units into Bengali text.
//
// Rendering is a single left-to-right fold over a word's units. Two
// flags carry across units: whether the previous unit ended as a bare
// consonant still open for a dependent vowel, and whether the output
// ends in a Bengali consonant glyph that a fola can attach to. Text
// outside the mapping tables passes through unchanged, so unknown
// input never disappears.
package renderer

import (
	"strings"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
	"github.com/Y3454R/obadh-engine/internal/transliteration/definitions"
)

// Renderer folds phonetic units into Bengali output. It is stateless
// between calls and safe for concurrent use.
type Renderer struct {
	defs *definitions.Definitions
}

// New creates a renderer over the given definitions.
func New(defs *definitions.Definitions) *Renderer {
	return &Renderer{defs: defs}
}

// state carries rendering context across the units of one word.
type state struct {
	consonant bool // previous unit ended as a bare consonant
	bengali   bool // output ends in a Bengali consonant glyph
}

// RenderUnits renders the phonetic units of one word.
func (r *Renderer) RenderUnits(units []domain.PhoneticUnit) string {
	var out strings.Builder
	var st state
	for i, u := range units {
		final := i == len(units)-1 && len(units) > 1
		r.renderUnit(&out, u, &st, final)
	}
	return out.String()
}

// RenderNumber converts a run of ASCII digits to Bengali numerals.
func (r *Renderer) RenderNumber(text string) string {
	var out strings.Builder
	for _, c := range text {
		if digit, ok := r.defs.Numeral(c); ok {
			out.WriteRune(digit)
		} else {
			out.WriteRune(c)
		}
	}
	return out.String()
}

// RenderSymbol converts a punctuation or symbol token, mapping the
// danda and the taka sign and passing everything else through.
func (r *Renderer) RenderSymbol(text string) string {
	if b, ok := r.defs.Symbol(text); ok {
		return b
	}
	return text
}

// renderUnit writes one unit and advances the state. The final flag
// marks the last unit of a word with more than one unit; only there
// does a terminating vowel write its kar.
func (r *Renderer) renderUnit(out *strings.Builder, u domain.PhoneticUnit, st *state, final bool) {
	switch u.Type {
	case domain.UnitTypeConsonant:
		if b, ok := r.defs.Consonant(u.Text); ok {
			out.WriteString(b)
			st.consonant = true
			st.bengali = true
			return
		}
		out.WriteString(u.Text)
		st.consonant = false
		st.bengali = false

	case domain.UnitTypeVowel, domain.UnitTypeTerminatingVowel:
		if v, ok := r.defs.Vowel(u.Text); ok {
			writeVowel(out, v, st.consonant)
		} else {
			out.WriteString(u.Text)
		}
		st.consonant = false

	case domain.UnitTypeConsonantWithVowel:
		if s, ok := r.consonantWithVowel(u.Text); ok {
			out.WriteString(s)
		} else {
			out.WriteString(u.Text)
		}
		st.consonant = false

	case domain.UnitTypeConsonantWithTerminator:
		base := strings.TrimSuffix(u.Text, definitions.TerminatorKey)
		if b, ok := r.defs.Consonant(base); ok {
			out.WriteString(b)
			if final {
				// The word-final inherent vowel is written out as
				// the o-kar; elsewhere it stays silent.
				if v, ok := r.defs.Vowel("O"); ok {
					out.WriteString(v.Dependent)
				}
			}
		} else {
			out.WriteString(u.Text)
		}
		st.consonant = false

	case domain.UnitTypeConsonantWithHasant:
		if u.Text == definitions.HasantMarker && out.Len() > 0 {
			out.WriteString(definitions.Hasant)
		} else {
			out.WriteString(u.Text)
		}

	case domain.UnitTypeConjunct:
		if s, ok := r.conjunct(u.Text); ok {
			out.WriteString(s)
			st.consonant = true
			st.bengali = true
			return
		}
		out.WriteString(u.Text)
		st.consonant = false
		st.bengali = false

	case domain.UnitTypeConjunctWithVowel:
		if s, ok := r.conjunctWithVowel(u.Text); ok {
			out.WriteString(s)
		} else {
			out.WriteString(u.Text)
		}
		st.consonant = false

	case domain.UnitTypeConjunctWithTerminator:
		base := strings.TrimSuffix(u.Text, definitions.TerminatorKey)
		if s, ok := r.conjunct(base); ok {
			out.WriteString(s)
		} else {
			out.WriteString(u.Text)
		}
		st.consonant = false

	case domain.UnitTypeRephOverConsonant:
		base := strings.TrimPrefix(u.Text, definitions.RephMarker)
		if b, ok := r.defs.Consonant(base); ok {
			out.WriteString(definitions.Reph)
			out.WriteString(b)
			st.consonant = true
			st.bengali = true
			return
		}
		out.WriteString(u.Text)
		st.consonant = false
		st.bengali = false

	case domain.UnitTypeRephOverConsonantWithVowel:
		rest := strings.TrimPrefix(u.Text, definitions.RephMarker)
		if s, ok := r.consonantWithVowel(rest); ok {
			out.WriteString(definitions.Reph)
			out.WriteString(s)
		} else {
			out.WriteString(u.Text)
		}
		st.consonant = false

	case domain.UnitTypeRephOverConsonantWithTerminator:
		base := strings.TrimSuffix(strings.TrimPrefix(u.Text, definitions.RephMarker), definitions.TerminatorKey)
		if b, ok := r.defs.Consonant(base); ok {
			out.WriteString(definitions.Reph)
			out.WriteString(b)
		} else {
			out.WriteString(u.Text)
		}
		st.consonant = false

	case domain.UnitTypeSpecialForm:
		writeSpecialForm(out, u.Text)
		st.consonant = false

	case domain.UnitTypeNumeral:
		out.WriteString(r.RenderNumber(u.Text))
		st.consonant = false

	case domain.UnitTypeSymbol:
		out.WriteString(r.RenderSymbol(u.Text))
		st.consonant = false

	case domain.UnitTypeUnknown:
		switch {
		case u.Text == "w" && st.bengali:
			// Bo-phola onto the previous consonant, which stays
			// open for a dependent vowel.
			out.WriteString(definitions.BoPhola)
		case u.Text == "y" && st.bengali:
			out.WriteString(definitions.JoPhola)
		default:
			out.WriteString(u.Text)
			st.consonant = false
			st.bengali = false
		}

	case domain.UnitTypeChandrabinduWithConsonant:
		base := strings.TrimSuffix(u.Text, definitions.ChandrabinduMarker)
		if b, ok := r.defs.Consonant(base); ok {
			out.WriteString(b)
			out.WriteString(definitions.Chandrabindu)
		} else {
			out.WriteString(u.Text)
		}
		st.consonant = false

	case domain.UnitTypeChandrabinduWithVowel:
		base := strings.TrimSuffix(u.Text, definitions.ChandrabinduMarker)
		if v, ok := r.defs.Vowel(base); ok {
			writeVowel(out, v, st.consonant)
			out.WriteString(definitions.Chandrabindu)
		} else {
			out.WriteString(u.Text)
		}
		st.consonant = false

	case domain.UnitTypeChandrabinduWithConsonantAndVowel:
		base := strings.TrimSuffix(u.Text, definitions.ChandrabinduMarker)
		if s, ok := r.consonantWithVowel(base); ok {
			out.WriteString(s)
			out.WriteString(definitions.Chandrabindu)
		} else {
			out.WriteString(u.Text)
		}
		st.consonant = false

	default:
		out.WriteString(u.Text)
		st.consonant = false
	}
}

// consonantWithVowel composes a consonant key and its trailing vowel
// key into the consonant plus kar form.
func (r *Renderer) consonantWithVowel(text string) (string, bool) {
	base, key, ok := r.defs.TrailingVowel(text)
	if !ok {
		return "", false
	}
	b, ok := r.defs.Consonant(base)
	if !ok {
		return "", false
	}
	v, ok := r.defs.Vowel(key)
	if !ok {
		return "", false
	}
	return b + v.Dependent, true
}

// conjunct renders the ",,"-separated members of a conjunct joined by
// hasant. Any unresolved member fails the whole conjunct.
func (r *Renderer) conjunct(text string) (string, bool) {
	parts := strings.Split(text, definitions.HasantMarker)
	if len(parts) < 2 {
		return "", false
	}
	return r.joinMembers(parts)
}

// conjunctWithVowel renders a conjunct whose last member carries a
// trailing vowel key.
func (r *Renderer) conjunctWithVowel(text string) (string, bool) {
	parts := strings.Split(text, definitions.HasantMarker)
	if len(parts) < 2 {
		return "", false
	}
	last := parts[len(parts)-1]
	base, key, ok := r.defs.TrailingVowel(last)
	if !ok {
		return "", false
	}
	v, ok := r.defs.Vowel(key)
	if !ok {
		return "", false
	}
	members := make([]string, 0, len(parts))
	members = append(members, parts[:len(parts)-1]...)
	members = append(members, base)
	joined, ok := r.joinMembers(members)
	if !ok {
		return "", false
	}
	return joined + v.Dependent, true
}

// joinMembers joins resolved conjunct members with hasant.
func (r *Renderer) joinMembers(parts []string) (string, bool) {
	var joined strings.Builder
	for i, part := range parts {
		member, ok := r.conjunctMember(part)
		if !ok {
			return "", false
		}
		if i > 0 {
			joined.WriteString(definitions.Hasant)
		}
		joined.WriteString(member)
	}
	return joined.String(), true
}

// conjunctMember resolves one conjunct member. Inside a conjunct "y"
// and "w" always mean the jo-phola and bo-phola letters, not their
// table mappings.
func (r *Renderer) conjunctMember(part string) (string, bool) {
	switch part {
	case "y":
		return "য", true
	case "w":
		return "ব", true
	}
	return r.defs.Consonant(part)
}

// writeVowel writes a vowel in dependent or independent form. The
// inherent vowel has an empty dependent form and draws nothing after
// a consonant.
func writeVowel(out *strings.Builder, v definitions.Vowel, afterConsonant bool) {
	if afterConsonant {
		out.WriteString(v.Dependent)
		return
	}
	out.WriteString(v.Independent)
}

// writeSpecialForm writes a standalone marker: a dangling reph,
// chandrabindu, visarga, anusvara or khanda-ta.
func writeSpecialForm(out *strings.Builder, text string) {
	switch text {
	case definitions.RephMarker:
		out.WriteString(definitions.Reph)
	case definitions.ChandrabinduMarker:
		out.WriteString(definitions.Chandrabindu)
	case definitions.VisargaMarker:
		out.WriteString(definitions.Visarga)
	case definitions.AnusvaraMarker:
		out.WriteString(definitions.Anusvara)
	default:
		for _, marker := range definitions.KhandaTaMarkers {
			if text == marker {
				out.WriteString(definitions.KhandaTa)
				return
			}
		}
		out.WriteString(text)
	}
}
