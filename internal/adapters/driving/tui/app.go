package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Y3454R/obadh-engine/internal/adapters/driving/tui/components/input"
	"github.com/Y3454R/obadh-engine/internal/adapters/driving/tui/components/status"
	"github.com/Y3454R/obadh-engine/internal/adapters/driving/tui/keymap"
	"github.com/Y3454R/obadh-engine/internal/adapters/driving/tui/messages"
	"github.com/Y3454R/obadh-engine/internal/adapters/driving/tui/styles"
	"github.com/Y3454R/obadh-engine/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea. The app shows a
// single live view: Roman input on top, the Bengali preview below it,
// and an optional per-token analysis pane.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// input is the Roman text input component.
	input *input.RomanInput

	// statusbar shows state and keybinding hints.
	statusbar *status.Bar

	// report is the latest conversion result.
	report *domain.Report

	// seq numbers conversion requests so results from superseded
	// keystrokes are discarded.
	seq int

	// showAnalysis toggles the per-token analysis pane.
	showAnalysis bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:     ports,
		ctx:       context.Background(),
		styles:    s,
		keymap:    km,
		input:     input.NewRomanInput(s),
		statusbar: status.NewBar(s, km),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("obadh - Roman to Bengali"),
		a.input.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.input.SetWidth(msg.Width)
		a.statusbar.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.ConversionCompleted:
		// A newer keystroke has already superseded this result.
		if msg.Seq != a.seq {
			return a, nil
		}
		a.handleConversionCompleted(msg)
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusbar.SetState(status.StateError)
		a.statusbar.SetMessage(msg.Err.Error())
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleKeyMsg processes key presses.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, a.keymap.ForceQuit), keymap.Matches(keyStr, a.keymap.Quit):
		return a, tea.Quit

	case keymap.Matches(keyStr, a.keymap.ToggleAnalysis):
		a.showAnalysis = !a.showAnalysis
		return a, nil

	case keymap.Matches(keyStr, a.keymap.Clear):
		a.input.Reset()
		a.report = nil
		a.err = nil
		a.statusbar.Clear()
		return a, nil
	}

	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)

	if a.input.Value() != before {
		return a, tea.Batch(cmd, a.convert(a.input.Value()))
	}
	return a, cmd
}

// convert issues an asynchronous conversion of the given text.
func (a *App) convert(text string) tea.Cmd {
	a.seq++
	seq := a.seq

	if strings.TrimSpace(text) == "" {
		a.report = nil
		a.err = nil
		a.statusbar.Clear()
		return nil
	}

	a.statusbar.SetState(status.StateConverting)

	ctx := a.ctx
	translit := a.ports.Translit

	return func() tea.Msg {
		// Stray characters are stripped so a half-typed line still
		// previews instead of erroring.
		report, err := translit.Analyze(ctx, translit.Clean(text))
		return messages.ConversionCompleted{Seq: seq, Report: report, Err: err}
	}
}

// handleConversionCompleted applies a finished conversion to the model.
func (a *App) handleConversionCompleted(msg messages.ConversionCompleted) {
	if msg.Err != nil {
		a.err = msg.Err
		a.statusbar.SetState(status.StateError)
		a.statusbar.SetMessage(msg.Err.Error())
		return
	}

	a.err = nil
	a.report = msg.Report
	a.statusbar.SetState(status.StateReady)
	a.statusbar.SetMessage("")
	if msg.Report != nil {
		a.statusbar.SetTokenCount(len(msg.Report.Analyses))
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)

	header := a.styles.Title.Render("Obadh")
	sections = append(sections, header, "")

	sections = append(sections, a.input.View(), "")

	if a.err != nil {
		errView := a.styles.Error.Render("Error: " + a.err.Error())
		sections = append(sections, errView, "")
	}

	sections = append(sections, a.renderOutput())

	if a.showAnalysis {
		sections = append(sections, "", a.renderAnalysis())
	}

	sections = append(sections, "", a.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderOutput renders the Bengali preview panel.
func (a *App) renderOutput() string {
	if a.report == nil || a.report.Output == "" {
		return a.styles.Muted.Render("Bengali output appears here as you type.")
	}
	return a.styles.OutputPanel.Render(a.styles.Bengali.Render(a.report.Output))
}

// renderAnalysis renders the per-token segmentation pane.
func (a *App) renderAnalysis() string {
	title := a.styles.Subtitle.Render("Analysis")

	if a.report == nil || len(a.report.Analyses) == 0 {
		empty := a.styles.Muted.Render("Nothing to analyse yet.")
		return lipgloss.JoinVertical(lipgloss.Left, title, empty)
	}

	rows := make([]string, 0, len(a.report.Analyses)+1)
	rows = append(rows, title)
	for _, analysis := range a.report.Analyses {
		rows = append(rows, a.renderAnalysisRow(analysis))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderAnalysisRow renders one token with its units and output.
func (a *App) renderAnalysisRow(analysis domain.TokenAnalysis) string {
	token := a.styles.Normal.Render(fmt.Sprintf("%-14s", analysis.Token.Text))
	kind := a.styles.Muted.Render(fmt.Sprintf("%-12s", string(analysis.Token.Type)))

	units := ""
	if len(analysis.Units) > 0 {
		parts := make([]string, 0, len(analysis.Units))
		for _, unit := range analysis.Units {
			parts = append(parts, unit.Text)
		}
		units = a.styles.Muted.Render(strings.Join(parts, "+") + "  ")
	}

	out := a.styles.Bengali.Render(analysis.Output)
	return "  " + token + kind + units + out
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Input returns the current Roman input.
func (a *App) Input() string {
	return a.input.Value()
}

// Output returns the latest Bengali output.
func (a *App) Output() string {
	if a.report == nil {
		return ""
	}
	return a.report.Output
}

// Report returns the latest conversion report.
func (a *App) Report() *domain.Report {
	return a.report
}

// AnalysisVisible returns whether the analysis pane is shown.
func (a *App) AnalysisVisible() bool {
	return a.showAnalysis
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.input.SetWidth(width)
	a.statusbar.SetWidth(width)
}
