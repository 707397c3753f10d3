package domain

import "fmt"

const unknownDescription = "Unknown"

// OutputFormat selects how a transliteration report is rendered.
type OutputFormat string

// Available output formats.
const (
	// OutputFormatText emits the Bengali text only.
	OutputFormatText OutputFormat = "text"

	// OutputFormatJSON emits a JSON object with input and output.
	OutputFormatJSON OutputFormat = "json"

	// OutputFormatXML emits a <result> element.
	OutputFormatXML OutputFormat = "xml"

	// OutputFormatHTML emits an HTML fragment.
	OutputFormatHTML OutputFormat = "html"

	// OutputFormatMarkdown emits a Markdown table row.
	OutputFormatMarkdown OutputFormat = "markdown"
)

// IsValid returns true if the format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatText, OutputFormatJSON, OutputFormatXML,
		OutputFormatHTML, OutputFormatMarkdown:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f OutputFormat) Description() string {
	switch f {
	case OutputFormatText:
		return "Plain text (Bengali output only)"
	case OutputFormatJSON:
		return "JSON object"
	case OutputFormatXML:
		return "XML element"
	case OutputFormatHTML:
		return "HTML fragment"
	case OutputFormatMarkdown:
		return "Markdown table"
	default:
		return unknownDescription
	}
}

// ParseOutputFormat converts a string to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	f := OutputFormat(s)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: output format %q", ErrInvalidInput, s)
	}
	return f, nil
}

// AllOutputFormats returns all available output formats.
func AllOutputFormats() []OutputFormat {
	return []OutputFormat{
		OutputFormatText,
		OutputFormatJSON,
		OutputFormatXML,
		OutputFormatHTML,
		OutputFormatMarkdown,
	}
}
