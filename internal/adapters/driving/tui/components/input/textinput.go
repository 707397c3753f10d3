// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Y3454R/obadh-engine/internal/adapters/driving/tui/styles"
)

// RomanInput wraps a bubbles textinput for Roman phonetic text.
type RomanInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewRomanInput creates a new Roman text input component.
func NewRomanInput(s *styles.Styles) *RomanInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Type Roman text..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &RomanInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init initialises the input.
func (r *RomanInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (r *RomanInput) Update(msg tea.Msg) (*RomanInput, tea.Cmd) {
	var cmd tea.Cmd
	r.textinput, cmd = r.textinput.Update(msg)
	return r, cmd
}

// View renders the input.
func (r *RomanInput) View() string {
	label := r.styles.Title.Render("Roman: ")
	field := r.styles.InputField.Render(r.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (r *RomanInput) Value() string {
	return r.textinput.Value()
}

// SetValue sets the input value.
func (r *RomanInput) SetValue(value string) {
	r.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (r *RomanInput) Focus() tea.Cmd {
	return r.textinput.Focus()
}

// Blur removes focus from the input.
func (r *RomanInput) Blur() {
	r.textinput.Blur()
}

// Focused returns whether the input is focused.
func (r *RomanInput) Focused() bool {
	return r.textinput.Focused()
}

// SetWidth sets the width of the input.
func (r *RomanInput) SetWidth(width int) {
	r.width = width
	// Account for label and padding
	inputWidth := width - 12
	if inputWidth < 20 {
		inputWidth = 20
	}
	r.textinput.Width = inputWidth
}

// Width returns the current width.
func (r *RomanInput) Width() int {
	return r.width
}

// Reset clears the input.
func (r *RomanInput) Reset() {
	r.textinput.Reset()
}
