// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/Y3454R/obadh-engine/internal/core/domain"
)

// ConversionCompleted carries a conversion report back to the model.
// Seq identifies the keystroke that requested the conversion so stale
// results can be discarded.
type ConversionCompleted struct {
	Seq    int
	Report *domain.Report
	Err    error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
