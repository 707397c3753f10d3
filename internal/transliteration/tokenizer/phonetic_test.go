package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
)

func TestTokenizeWord_ExplicitConjuncts(t *testing.T) {
	tok := newTestTokenizer()

	tests := []struct {
		word string
		want []domain.PhoneticUnit
	}{
		{
			word: "n,,d,,r",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeConjunct, Text: "n,,d,,r", Position: 0},
			},
		},
		{
			// A trailing hasant is absorbed into the conjunct.
			word: "n,,d,,r,,",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeConjunct, Text: "n,,d,,r", Position: 0},
			},
		},
		{
			word: "n,,d,,rA",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeConjunctWithVowel, Text: "n,,d,,rA", Position: 0},
			},
		},
		{
			word: "n,,d,,ro",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeConjunctWithTerminator, Text: "n,,d,,ro", Position: 0},
			},
		},
		{
			// Mixed notation: the implicit r joins the explicit conjunct.
			word: "n,,dr",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeConjunct, Text: "n,,d,,r", Position: 0},
			},
		},
		{
			// A dangling hasant stays a separate unit.
			word: "k,,",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeConsonant, Text: "k", Position: 0},
				{Type: domain.UnitTypeConsonantWithHasant, Text: ",,", Position: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, tok.TokenizeWord(tt.word))
		})
	}
}

func TestTokenizeWord_ImplicitConjuncts(t *testing.T) {
	tok := newTestTokenizer()

	tests := []struct {
		word string
		want []domain.PhoneticUnit
	}{
		{
			word: "kk",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeConjunct, Text: "k,,k", Position: 0},
			},
		},
		{
			// Only "r" extends an already formed conjunct.
			word: "str",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeConjunct, Text: "s,,t,,r", Position: 0},
			},
		},
		{
			word: "krm",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeConjunct, Text: "k,,r", Position: 0},
				{Type: domain.UnitTypeConsonant, Text: "m", Position: 2},
			},
		},
		{
			word: "sthn",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeConjunct, Text: "s,,th", Position: 0},
				{Type: domain.UnitTypeConsonant, Text: "n", Position: 3},
			},
		},
		{
			word: "ntro",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeConjunctWithTerminator, Text: "n,,t,,ro", Position: 0},
			},
		},
		{
			word: "kokkO",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeConsonantWithTerminator, Text: "ko", Position: 0},
				{Type: domain.UnitTypeConjunctWithVowel, Text: "k,,kO", Position: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, tok.TokenizeWord(tt.word))
		})
	}
}

func TestTokenizeWord_ClusterKeysStaySingle(t *testing.T) {
	tok := newTestTokenizer()

	units := tok.TokenizeWord("kkh")
	require.Len(t, units, 1)
	assert.Equal(t, domain.UnitTypeConsonant, units[0].Type)
	assert.Equal(t, "kkh", units[0].Text)

	units = tok.TokenizeWord("kkhA")
	require.Len(t, units, 1)
	assert.Equal(t, domain.UnitTypeConsonantWithVowel, units[0].Type)
	assert.Equal(t, "kkhA", units[0].Text)
}

func TestTokenizeWord_RephAndVocalicR(t *testing.T) {
	tok := newTestTokenizer()

	tests := []struct {
		word string
		want []domain.PhoneticUnit
	}{
		{
			word: "rrm",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeRephOverConsonant, Text: "rrm", Position: 0},
			},
		},
		{
			word: "rrka",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeRephOverConsonantWithVowel, Text: "rrka", Position: 0},
			},
		},
		{
			// "rr" before "i" is the vocalic r, not a reph.
			word: "mrri",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeConsonantWithVowel, Text: "mrri", Position: 0},
			},
		},
		{
			word: "rritu",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeVowel, Text: "rri", Position: 0},
				{Type: domain.UnitTypeConsonantWithVowel, Text: "tu", Position: 3},
			},
		},
		{
			// A plain rm pair conjuncts instead.
			word: "rm",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeConjunct, Text: "r,,m", Position: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, tok.TokenizeWord(tt.word))
		})
	}
}

func TestTokenizeWord_VowelAttachment(t *testing.T) {
	tok := newTestTokenizer()

	tests := []struct {
		word string
		want []domain.PhoneticUnit
	}{
		{
			word: "kok",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeConsonantWithTerminator, Text: "ko", Position: 0},
				{Type: domain.UnitTypeConsonant, Text: "k", Position: 2},
			},
		},
		{
			word: "boi",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeConsonantWithTerminator, Text: "bo", Position: 0},
				{Type: domain.UnitTypeVowel, Text: "i", Position: 2},
			},
		},
		{
			word: "ai",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeVowel, Text: "a", Position: 0},
				{Type: domain.UnitTypeVowel, Text: "i", Position: 1},
			},
		},
		{
			word: "bangla",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeConsonantWithVowel, Text: "ba", Position: 0},
				{Type: domain.UnitTypeSpecialForm, Text: "ng", Position: 2},
				{Type: domain.UnitTypeConsonantWithVowel, Text: "la", Position: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, tok.TokenizeWord(tt.word))
		})
	}
}

func TestTokenizeWord_SpecialForms(t *testing.T) {
	tok := newTestTokenizer()

	tests := []struct {
		word string
		want []domain.PhoneticUnit
	}{
		{
			word: "du:kh",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeConsonantWithVowel, Text: "du", Position: 0},
				{Type: domain.UnitTypeSpecialForm, Text: ":", Position: 2},
				{Type: domain.UnitTypeConsonant, Text: "kh", Position: 3},
			},
		},
		{
			word: "t``",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeSpecialForm, Text: "t``", Position: 0},
			},
		},
		{
			word: "cha^d",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeChandrabinduWithConsonantAndVowel, Text: "cha^", Position: 0},
				{Type: domain.UnitTypeConsonant, Text: "d", Position: 4},
			},
		},
		{
			word: "a^",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeChandrabinduWithVowel, Text: "a^", Position: 0},
			},
		},
		{
			word: "k^",
			want: []domain.PhoneticUnit{
				{Type: domain.UnitTypeChandrabinduWithConsonant, Text: "k^", Position: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, tok.TokenizeWord(tt.word))
		})
	}
}

func TestTokenizeWord_UnknownBlocksMerging(t *testing.T) {
	tok := newTestTokenizer()

	// "w" is not a consonant key; it stays an unknown unit and the
	// neighbours never conjunct across it.
	units := tok.TokenizeWord("atmbiSwas")
	want := []domain.PhoneticUnit{
		{Type: domain.UnitTypeVowel, Text: "a", Position: 0},
		{Type: domain.UnitTypeConjunct, Text: "t,,m", Position: 1},
		{Type: domain.UnitTypeConsonantWithVowel, Text: "bi", Position: 3},
		{Type: domain.UnitTypeConsonant, Text: "S", Position: 5},
		{Type: domain.UnitTypeUnknown, Text: "w", Position: 6},
		{Type: domain.UnitTypeVowel, Text: "a", Position: 7},
		{Type: domain.UnitTypeConsonant, Text: "s", Position: 8},
	}
	assert.Equal(t, want, units)
}

func TestTokenizeWord_NumeralsAndSymbols(t *testing.T) {
	tok := newTestTokenizer()

	units := tok.TokenizeWord("k1.")
	want := []domain.PhoneticUnit{
		{Type: domain.UnitTypeConsonant, Text: "k", Position: 0},
		{Type: domain.UnitTypeNumeral, Text: "1", Position: 1},
		{Type: domain.UnitTypeSymbol, Text: ".", Position: 2},
	}
	assert.Equal(t, want, units)
}

func TestTokenizeWord_Empty(t *testing.T) {
	tok := newTestTokenizer()
	assert.Empty(t, tok.TokenizeWord(""))
}
