// Package definitions holds the Roman-to-Bengali mapping tables.
//
// A Definitions value is immutable after construction. Build one with
// New and share it by reference; there is no package-level state.
package definitions

import "sort"

// Bengali marks and composed forms used by the renderer.
const (
	// Hasant is the vowel-killer mark joining conjunct members.
	Hasant = "্" // ্

	// Chandrabindu nasalises the unit it attaches to.
	Chandrabindu = "ঁ" // ঁ

	// Visarga is the trailing breath mark.
	Visarga = "ঃ" // ঃ

	// Anusvara is the final velar nasal.
	Anusvara = "ং" // ং

	// KhandaTa is the truncated ta.
	KhandaTa = "ৎ" // ৎ

	// Reph is ra rendered above the following consonant.
	Reph = "র" + Hasant

	// JoPhola is the ya attached under a consonant.
	JoPhola = Hasant + "য"

	// BoPhola is the ba attached under a consonant.
	BoPhola = Hasant + "ব"
)

// Roman notation markers recognised by the segmenter.
const (
	// HasantMarker explicitly joins consonants into a conjunct.
	HasantMarker = ",,"

	// RephMarker puts a reph over the following consonant.
	RephMarker = "rr"

	// ChandrabinduMarker nasalises the preceding unit.
	ChandrabinduMarker = "^"

	// VisargaMarker emits a visarga.
	VisargaMarker = ":"

	// AnusvaraMarker emits an anusvara.
	AnusvaraMarker = "ng"

	// TerminatorKey is the inherent vowel.
	TerminatorKey = "o"
)

// KhandaTaMarkers are the khanda-ta notations, lower and upper case.
var KhandaTaMarkers = []string{"t``", "T``"}

// Vowel holds both written forms of a vowel.
type Vowel struct {
	// Independent is the standalone letter (word-initial, post-vowel).
	Independent string

	// Dependent is the kar form attached to a consonant. Empty for
	// the inherent vowel, which leaves the consonant unmarked.
	Dependent string
}

// Definitions is the immutable mapping table set.
type Definitions struct {
	consonants map[string]string
	clusters   map[string]string
	vowels     map[string]Vowel
	numerals   map[rune]rune
	symbols    map[string]string

	consonantKeys []string // longest first, clusters included
	vowelKeys     []string // longest first
}

// New builds the canonical table set.
func New() *Definitions {
	d := &Definitions{
		consonants: consonantTable(),
		clusters:   clusterTable(),
		vowels:     vowelTable(),
		numerals:   numeralTable(),
		symbols:    symbolTable(),
	}

	for key := range d.clusters {
		d.consonantKeys = append(d.consonantKeys, key)
	}
	for key := range d.consonants {
		d.consonantKeys = append(d.consonantKeys, key)
	}
	sortLongestFirst(d.consonantKeys)

	for key := range d.vowels {
		d.vowelKeys = append(d.vowelKeys, key)
	}
	sortLongestFirst(d.vowelKeys)

	return d
}

// sortLongestFirst orders keys by descending length, then
// lexicographically for determinism.
func sortLongestFirst(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
}

// Consonant returns the Bengali form for a consonant key, checking
// the special clusters first.
func (d *Definitions) Consonant(key string) (string, bool) {
	if b, ok := d.clusters[key]; ok {
		return b, true
	}
	b, ok := d.consonants[key]
	return b, ok
}

// IsCluster reports whether key is one of the special clusters.
func (d *Definitions) IsCluster(key string) bool {
	_, ok := d.clusters[key]
	return ok
}

// Vowel returns the forms for a vowel key.
func (d *Definitions) Vowel(key string) (Vowel, bool) {
	v, ok := d.vowels[key]
	return v, ok
}

// Numeral returns the Bengali digit for an ASCII digit.
func (d *Definitions) Numeral(r rune) (rune, bool) {
	b, ok := d.numerals[r]
	return b, ok
}

// Symbol returns the Bengali form for a mapped symbol.
func (d *Definitions) Symbol(s string) (string, bool) {
	b, ok := d.symbols[s]
	return b, ok
}

// LongestConsonant finds the longest consonant key prefixing s.
func (d *Definitions) LongestConsonant(s string) (string, bool) {
	for _, key := range d.consonantKeys {
		if len(key) <= len(s) && s[:len(key)] == key {
			return key, true
		}
	}
	return "", false
}

// LongestVowel finds the longest vowel key prefixing s.
func (d *Definitions) LongestVowel(s string) (string, bool) {
	for _, key := range d.vowelKeys {
		if len(key) <= len(s) && s[:len(key)] == key {
			return key, true
		}
	}
	return "", false
}

// TrailingVowel finds the longest vowel key suffixing s and splits it
// off. Units built by the merger always append the vowel key last, so
// the split is unambiguous.
func (d *Definitions) TrailingVowel(s string) (base, key string, ok bool) {
	for _, k := range d.vowelKeys {
		if len(k) < len(s) && s[len(s)-len(k):] == k {
			return s[:len(s)-len(k)], k, true
		}
	}
	return s, "", false
}

// ConsonantKeys returns the consonant keys, longest first. The slice
// is shared; callers must not modify it.
func (d *Definitions) ConsonantKeys() []string {
	return d.consonantKeys
}

// VowelKeys returns the vowel keys, longest first. The slice is
// shared; callers must not modify it.
func (d *Definitions) VowelKeys() []string {
	return d.vowelKeys
}

// SymbolKeys returns the mapped symbol keys, sorted.
func (d *Definitions) SymbolKeys() []string {
	keys := make([]string, 0, len(d.symbols))
	for key := range d.symbols {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
