package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
	"github.com/Y3454R/obadh-engine/internal/transliteration/definitions"
)

const (
	// uriScheme is the custom URI scheme for obadh resources.
	uriScheme = "obadh://"
)

// alphabetVowel holds both written forms of a vowel for the dump.
type alphabetVowel struct {
	Independent string `json:"independent"`
	Dependent   string `json:"dependent"`
}

// alphabetMarkers lists the Roman notation markers.
type alphabetMarkers struct {
	Hasant       string   `json:"hasant"`
	Reph         string   `json:"reph"`
	Chandrabindu string   `json:"chandrabindu"`
	Visarga      string   `json:"visarga"`
	Anusvara     string   `json:"anusvara"`
	KhandaTa     []string `json:"khanda_ta"`
}

// alphabetDump is the full mapping table as served to clients.
type alphabetDump struct {
	Consonants map[string]string        `json:"consonants"`
	Vowels     map[string]alphabetVowel `json:"vowels"`
	Numerals   map[string]string        `json:"numerals"`
	Symbols    map[string]string        `json:"symbols"`
	Markers    alphabetMarkers          `json:"markers"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the mapping tables.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "alphabet",
		Name:        "alphabet",
		Description: "The full Roman to Bengali mapping tables",
		MIMEType:    "application/json",
	}, s.handleAlphabetResource)

	// Resource for the exceptions dictionary.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "exceptions",
		Name:        "exceptions",
		Description: "Dictionary exceptions that override the phonetic rules",
		MIMEType:    "application/json",
	}, s.handleExceptionsResource)
}

// buildAlphabet assembles the mapping table dump from the canonical
// definitions.
func buildAlphabet() alphabetDump {
	defs := definitions.New()

	consonants := make(map[string]string, len(defs.ConsonantKeys()))
	for _, key := range defs.ConsonantKeys() {
		if bengali, ok := defs.Consonant(key); ok {
			consonants[key] = bengali
		}
	}

	vowels := make(map[string]alphabetVowel, len(defs.VowelKeys()))
	for _, key := range defs.VowelKeys() {
		if vowel, ok := defs.Vowel(key); ok {
			vowels[key] = alphabetVowel{
				Independent: vowel.Independent,
				Dependent:   vowel.Dependent,
			}
		}
	}

	numerals := make(map[string]string, 10)
	for r := '0'; r <= '9'; r++ {
		if bengali, ok := defs.Numeral(r); ok {
			numerals[string(r)] = string(bengali)
		}
	}

	symbols := make(map[string]string)
	for _, key := range defs.SymbolKeys() {
		if bengali, ok := defs.Symbol(key); ok {
			symbols[key] = bengali
		}
	}

	return alphabetDump{
		Consonants: consonants,
		Vowels:     vowels,
		Numerals:   numerals,
		Symbols:    symbols,
		Markers: alphabetMarkers{
			Hasant:       definitions.HasantMarker,
			Reph:         definitions.RephMarker,
			Chandrabindu: definitions.ChandrabinduMarker,
			Visarga:      definitions.VisargaMarker,
			Anusvara:     definitions.AnusvaraMarker,
			KhandaTa:     definitions.KhandaTaMarkers,
		},
	}
}

// handleAlphabetResource returns the mapping tables as JSON.
func (s *Server) handleAlphabetResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(buildAlphabet(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling alphabet: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleExceptionsResource returns the exceptions dictionary as JSON.
// Without a dictionary, or with it disabled, the list is empty.
func (s *Server) handleExceptionsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	emptyResult := &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     "[]",
		}},
	}

	if s.ports.Dictionary == nil {
		return emptyResult, nil
	}

	exceptions, err := s.ports.Dictionary.List(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrDictionaryDisabled) {
			return emptyResult, nil
		}
		return nil, fmt.Errorf("listing exceptions: %w", err)
	}

	type exceptionInfo struct {
		Roman   string `json:"roman"`
		Bengali string `json:"bengali"`
		Note    string `json:"note,omitempty"`
	}

	infos := make([]exceptionInfo, len(exceptions))
	for i, exc := range exceptions {
		infos[i] = exceptionInfo{
			Roman:   exc.Roman,
			Bengali: exc.Bengali,
			Note:    exc.Note,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling exceptions: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
