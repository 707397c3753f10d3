package output

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"strings"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
)

// RegisterDefaults registers all built-in renderers with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(domain.OutputFormatText, renderText)
	r.Register(domain.OutputFormatJSON, renderJSON)
	r.Register(domain.OutputFormatXML, renderXML)
	r.Register(domain.OutputFormatHTML, renderHTML)
	r.Register(domain.OutputFormatMarkdown, renderMarkdown)
}

// jsonReport is the wire shape for the JSON format.
type jsonReport struct {
	Input         string                 `json:"input"`
	Output        string                 `json:"output"`
	Performance   *domain.Performance    `json:"performance,omitempty"`
	TokenAnalysis []domain.TokenAnalysis `json:"token_analysis,omitempty"`
}

// xmlReport is the wire shape for the XML format.
type xmlReport struct {
	XMLName xml.Name `xml:"result"`
	Input   string   `xml:"input"`
	Output  string   `xml:"output"`
}

func renderText(report *domain.Report, _ Options) (string, error) {
	return report.Output, nil
}

func renderJSON(report *domain.Report, opts Options) (string, error) {
	wire := jsonReport{
		Input:  report.Input,
		Output: report.Output,
	}

	// Timings are only present when the report came from Analyze.
	if report.Timings.Total > 0 {
		perf := report.Timings.Performance()
		wire.Performance = &perf
	}
	if opts.Verbose {
		wire.TokenAnalysis = report.Analyses
	}

	var data []byte
	var err error
	if opts.Pretty {
		data, err = json.MarshalIndent(wire, "", "  ")
	} else {
		data, err = json.Marshal(wire)
	}
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}

	return string(data), nil
}

func renderXML(report *domain.Report, opts Options) (string, error) {
	wire := xmlReport{
		Input:  report.Input,
		Output: report.Output,
	}

	var data []byte
	var err error
	if opts.Pretty {
		data, err = xml.MarshalIndent(wire, "", "  ")
	} else {
		data, err = xml.Marshal(wire)
	}
	if err != nil {
		return "", fmt.Errorf("encode xml: %w", err)
	}

	return string(data), nil
}

func renderHTML(report *domain.Report, opts Options) (string, error) {
	input := html.EscapeString(report.Input)
	out := html.EscapeString(report.Output)

	if opts.Pretty {
		return fmt.Sprintf(
			"<div class=\"obadh-result\">\n  <span class=\"roman\">%s</span>\n  <span class=\"bengali\">%s</span>\n</div>",
			input, out,
		), nil
	}

	return fmt.Sprintf(
		`<div class="obadh-result"><span class="roman">%s</span><span class="bengali">%s</span></div>`,
		input, out,
	), nil
}

func renderMarkdown(report *domain.Report, opts Options) (string, error) {
	var b strings.Builder

	b.WriteString("| Roman | Bengali |\n")
	b.WriteString("| --- | --- |\n")
	fmt.Fprintf(&b, "| %s | %s |", markdownCell(report.Input), markdownCell(report.Output))

	if opts.Verbose && len(report.Analyses) > 0 {
		b.WriteString("\n\n| Token | Type | Output |\n")
		b.WriteString("| --- | --- | --- |\n")
		for i, a := range report.Analyses {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "| %s | %s | %s |",
				markdownCell(a.Token.Text), a.Token.Type, markdownCell(a.Output))
		}
	}

	return b.String(), nil
}

// markdownCell escapes characters that would break a table cell.
func markdownCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
