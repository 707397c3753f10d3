// Package mcp provides an MCP (Model Context Protocol) server adapter for obadh.
// It enables AI assistants like Claude to transliterate Roman text to Bengali.
package mcp

import "errors"

// ErrMissingTranslitService is returned when the transliteration service is not provided.
var ErrMissingTranslitService = errors.New("mcp: transliteration service is required")
