package domain

// TokenType classifies a segment of raw input text.
type TokenType string

const (
	// TokenTypeWord is a run of transliterable characters.
	TokenTypeWord TokenType = "word"
	// TokenTypeWhitespace is a run of whitespace, preserved verbatim.
	TokenTypeWhitespace TokenType = "whitespace"
	// TokenTypeNumber is a run of ASCII digits.
	TokenTypeNumber TokenType = "number"
	// TokenTypePunctuation is a single punctuation character.
	TokenTypePunctuation TokenType = "punctuation"
	// TokenTypeSymbol is a single non-punctuation symbol character.
	TokenTypeSymbol TokenType = "symbol"
)

// IsValid returns true if the token type is recognised.
func (t TokenType) IsValid() bool {
	switch t {
	case TokenTypeWord, TokenTypeWhitespace, TokenTypeNumber, TokenTypePunctuation, TokenTypeSymbol:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t TokenType) String() string {
	return string(t)
}

// Token is a classified segment of input text.
// Concatenating the Text of all tokens reproduces the input exactly.
type Token struct {
	// Type classifies the segment.
	Type TokenType `json:"type"`

	// Text is the raw text of the segment.
	Text string `json:"text"`

	// Position is the byte offset of the segment in the source line.
	Position int `json:"position"`
}
