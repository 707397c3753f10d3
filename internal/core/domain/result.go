package domain

import "time"

// Timings records how long each transliteration stage took.
type Timings struct {
	// Sanitize is the input validation time.
	Sanitize time.Duration

	// Tokenize is the text and phonetic segmentation time.
	Tokenize time.Duration

	// Transliterate is the rendering time.
	Transliterate time.Duration

	// Total is the end-to-end time.
	Total time.Duration
}

// Performance is the wire representation of Timings, in milliseconds.
type Performance struct {
	TotalMs         float64 `json:"total_ms"`
	SanitizeMs      float64 `json:"sanitize_ms"`
	TokenizeMs      float64 `json:"tokenize_ms"`
	TransliterateMs float64 `json:"transliterate_ms"`
}

// Performance converts the timings to milliseconds for reporting.
func (t Timings) Performance() Performance {
	return Performance{
		TotalMs:         durationMs(t.Total),
		SanitizeMs:      durationMs(t.Sanitize),
		TokenizeMs:      durationMs(t.Tokenize),
		TransliterateMs: durationMs(t.Transliterate),
	}
}

func durationMs(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}

// TokenAnalysis pairs an input token with its phonetic segmentation
// and rendered output.
type TokenAnalysis struct {
	// Token is the input segment.
	Token Token `json:"token"`

	// Units is the phonetic segmentation. Only word tokens have units.
	Units []PhoneticUnit `json:"units,omitempty"`

	// Output is the Bengali rendering of this token.
	Output string `json:"output"`
}

// Report is the full result of a transliteration.
type Report struct {
	// Input is the original text.
	Input string `json:"input"`

	// Output is the Bengali text.
	Output string `json:"output"`

	// Analyses holds the per-token breakdown, in input order.
	Analyses []TokenAnalysis `json:"token_analysis,omitempty"`

	// Timings holds the per-stage durations.
	Timings Timings `json:"-"`
}

// BatchSummary describes a completed batch run.
type BatchSummary struct {
	// Lines is the number of input lines processed.
	Lines int

	// Failed is the number of lines that could not be converted. Only
	// lenient runs complete with failures; strict runs abort on the
	// first one.
	Failed int

	// Duration is the wall-clock time for the whole run.
	Duration time.Duration
}
