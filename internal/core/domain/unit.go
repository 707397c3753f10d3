package domain

// UnitType classifies a phonetic unit within a word.
//
// A word is segmented into units by longest-match scanning and then
// structurally merged, so a single unit may span several Roman
// characters (a conjunct such as "n,,d,,r" is one unit).
type UnitType string

const (
	// UnitTypeConsonant is a bare consonant, including the special
	// clusters (kkh, ksh, gg) that behave as single consonants.
	UnitTypeConsonant UnitType = "consonant"
	// UnitTypeVowel is a standalone vowel.
	UnitTypeVowel UnitType = "vowel"
	// UnitTypeTerminatingVowel is the inherent vowel "o".
	UnitTypeTerminatingVowel UnitType = "terminating_vowel"
	// UnitTypeConsonantWithVowel is a consonant carrying a vowel.
	UnitTypeConsonantWithVowel UnitType = "consonant_with_vowel"
	// UnitTypeConsonantWithTerminator is a consonant closed by "o".
	UnitTypeConsonantWithTerminator UnitType = "consonant_with_terminator"
	// UnitTypeConsonantWithHasant is a consonant followed by ",,".
	UnitTypeConsonantWithHasant UnitType = "consonant_with_hasant"
	// UnitTypeConjunct is a consonant cluster joined by hasant.
	UnitTypeConjunct UnitType = "conjunct"
	// UnitTypeConjunctWithVowel is a conjunct carrying a vowel.
	UnitTypeConjunctWithVowel UnitType = "conjunct_with_vowel"
	// UnitTypeConjunctWithTerminator is a conjunct closed by "o".
	UnitTypeConjunctWithTerminator UnitType = "conjunct_with_terminator"
	// UnitTypeRephOverConsonant is the "rr" marker over a consonant.
	UnitTypeRephOverConsonant UnitType = "reph_over_consonant"
	// UnitTypeRephOverConsonantWithVowel adds a vowel to the above.
	UnitTypeRephOverConsonantWithVowel UnitType = "reph_over_consonant_with_vowel"
	// UnitTypeRephOverConsonantWithTerminator closes the above with "o".
	UnitTypeRephOverConsonantWithTerminator UnitType = "reph_over_consonant_with_terminator"
	// UnitTypeSpecialForm is a standalone diacritic form: anusvara,
	// visarga or khanda-ta.
	UnitTypeSpecialForm UnitType = "special_form"
	// UnitTypeNumeral is a single ASCII digit.
	UnitTypeNumeral UnitType = "numeral"
	// UnitTypeSymbol is a mapped symbol such as "." or "$".
	UnitTypeSymbol UnitType = "symbol"
	// UnitTypeUnknown is an unmatched character, emitted verbatim
	// unless the renderer can attach it as a fola (y/w).
	UnitTypeUnknown UnitType = "unknown"
	// UnitTypeChandrabinduWithConsonant is "^" fused onto a consonant.
	UnitTypeChandrabinduWithConsonant UnitType = "chandrabindu_with_consonant"
	// UnitTypeChandrabinduWithVowel is "^" fused onto a vowel.
	UnitTypeChandrabinduWithVowel UnitType = "chandrabindu_with_vowel"
	// UnitTypeChandrabinduWithConsonantAndVowel is "^" fused onto a
	// consonant that carries a vowel.
	UnitTypeChandrabinduWithConsonantAndVowel UnitType = "chandrabindu_with_consonant_and_vowel"
)

// IsValid returns true if the unit type is recognised.
func (u UnitType) IsValid() bool {
	switch u {
	case UnitTypeConsonant, UnitTypeVowel, UnitTypeTerminatingVowel,
		UnitTypeConsonantWithVowel, UnitTypeConsonantWithTerminator,
		UnitTypeConsonantWithHasant, UnitTypeConjunct,
		UnitTypeConjunctWithVowel, UnitTypeConjunctWithTerminator,
		UnitTypeRephOverConsonant, UnitTypeRephOverConsonantWithVowel,
		UnitTypeRephOverConsonantWithTerminator, UnitTypeSpecialForm,
		UnitTypeNumeral, UnitTypeSymbol, UnitTypeUnknown,
		UnitTypeChandrabinduWithConsonant, UnitTypeChandrabinduWithVowel,
		UnitTypeChandrabinduWithConsonantAndVowel:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (u UnitType) String() string {
	return string(u)
}

// IsConsonantLike returns true for units a hasant or reph marker can
// join onto: bare consonants and bare conjuncts.
func (u UnitType) IsConsonantLike() bool {
	return u == UnitTypeConsonant || u == UnitTypeConjunct
}

// HasVowel returns true if the unit already carries a vowel or
// terminator and can no longer accept one.
func (u UnitType) HasVowel() bool {
	switch u {
	case UnitTypeConsonantWithVowel, UnitTypeConsonantWithTerminator,
		UnitTypeConjunctWithVowel, UnitTypeConjunctWithTerminator,
		UnitTypeRephOverConsonantWithVowel, UnitTypeRephOverConsonantWithTerminator,
		UnitTypeChandrabinduWithConsonantAndVowel, UnitTypeChandrabinduWithVowel:
		return true
	default:
		return false
	}
}

// AllUnitTypes returns every recognised unit type.
func AllUnitTypes() []UnitType {
	return []UnitType{
		UnitTypeConsonant,
		UnitTypeVowel,
		UnitTypeTerminatingVowel,
		UnitTypeConsonantWithVowel,
		UnitTypeConsonantWithTerminator,
		UnitTypeConsonantWithHasant,
		UnitTypeConjunct,
		UnitTypeConjunctWithVowel,
		UnitTypeConjunctWithTerminator,
		UnitTypeRephOverConsonant,
		UnitTypeRephOverConsonantWithVowel,
		UnitTypeRephOverConsonantWithTerminator,
		UnitTypeSpecialForm,
		UnitTypeNumeral,
		UnitTypeSymbol,
		UnitTypeUnknown,
		UnitTypeChandrabinduWithConsonant,
		UnitTypeChandrabinduWithVowel,
		UnitTypeChandrabinduWithConsonantAndVowel,
	}
}

// PhoneticUnit is a structural unit within a word.
type PhoneticUnit struct {
	// Type classifies the unit.
	Type UnitType `json:"type"`

	// Text is the Roman text of the unit. Conjunct members stay
	// joined by the ",," hasant notation (e.g. "n,,d,,r").
	Text string `json:"text"`

	// Position is the byte offset of the unit's first character in
	// the source word. Merging keeps the position of the left unit.
	Position int `json:"position"`
}
