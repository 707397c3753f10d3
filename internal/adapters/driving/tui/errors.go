package tui

import "errors"

// ErrMissingTranslitService is returned when the transliteration service is not provided.
var ErrMissingTranslitService = errors.New("tui: transliteration service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
