package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
)

// TransliterateInput is the input schema for the transliterate tool.
type TransliterateInput struct {
	Text    string `json:"text" jsonschema:"the Roman phonetic text to convert to Bengali"`
	Lenient bool   `json:"lenient,omitempty" jsonschema:"strip invalid characters instead of failing"`
}

// TransliterateOutput is the output schema for the transliterate tool.
type TransliterateOutput struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// AnalyzeInput is the input schema for the analyze tool.
type AnalyzeInput struct {
	Text string `json:"text" jsonschema:"the Roman phonetic text to analyze"`
}

// AnalyzeOutput is the output schema for the analyze tool.
type AnalyzeOutput struct {
	Input       string                 `json:"input"`
	Output      string                 `json:"output"`
	Tokens      []domain.TokenAnalysis `json:"tokens"`
	Performance domain.Performance     `json:"performance"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "transliterate",
		Description: "Convert Roman phonetic text to Bengali using Avro rules",
	}, s.handleTransliterate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze",
		Description: "Convert Roman text and return the per-token phonetic breakdown with timings",
	}, s.handleAnalyze)
}

// handleTransliterate handles the transliterate tool invocation.
func (s *Server) handleTransliterate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TransliterateInput,
) (*mcp.CallToolResult, TransliterateOutput, error) {
	text := input.Text
	if input.Lenient {
		text = s.ports.Translit.Clean(text)
	}

	result, err := s.ports.Translit.Transliterate(ctx, text)
	if err != nil {
		return nil, TransliterateOutput{}, err
	}

	return nil, TransliterateOutput{
		Input:  input.Text,
		Output: result,
	}, nil
}

// handleAnalyze handles the analyze tool invocation.
func (s *Server) handleAnalyze(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, AnalyzeOutput, error) {
	report, err := s.ports.Translit.Analyze(ctx, input.Text)
	if err != nil {
		return nil, AnalyzeOutput{}, err
	}

	output := AnalyzeOutput{
		Input:       report.Input,
		Output:      report.Output,
		Tokens:      report.Analyses,
		Performance: report.Timings.Performance(),
	}
	if output.Tokens == nil {
		output.Tokens = []domain.TokenAnalysis{}
	}

	return nil, output, nil
}
