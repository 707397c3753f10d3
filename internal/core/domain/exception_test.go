package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestException_Validate tests entry validation
func TestException_Validate(t *testing.T) {
	tests := []struct {
		name      string
		exception Exception
		wantErr   error
	}{
		{
			name:      "valid entry",
			exception: Exception{Roman: "Dhaka", Bengali: "ঢাকা"},
			wantErr:   nil,
		},
		{
			name:      "empty roman",
			exception: Exception{Roman: "", Bengali: "ঢাকা"},
			wantErr:   ErrEmptyRoman,
		},
		{
			name:      "whitespace roman",
			exception: Exception{Roman: "   ", Bengali: "ঢাকা"},
			wantErr:   ErrEmptyRoman,
		},
		{
			name:      "roman containing a space",
			exception: Exception{Roman: "modhu mela", Bengali: "মধু মেলা"},
			wantErr:   ErrInvalidInput,
		},
		{
			name:      "empty bengali",
			exception: Exception{Roman: "Dhaka", Bengali: ""},
			wantErr:   ErrEmptyBengali,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.exception.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// TestTimings_Performance tests millisecond conversion
func TestTimings_Performance(t *testing.T) {
	timings := Timings{
		Sanitize:      1500 * time.Microsecond,
		Tokenize:      250 * time.Microsecond,
		Transliterate: 2 * time.Millisecond,
		Total:         3750 * time.Microsecond,
	}
	perf := timings.Performance()

	assert.InDelta(t, 1.5, perf.SanitizeMs, 0.001)
	assert.InDelta(t, 0.25, perf.TokenizeMs, 0.001)
	assert.InDelta(t, 2.0, perf.TransliterateMs, 0.001)
	assert.InDelta(t, 3.75, perf.TotalMs, 0.001)
}
