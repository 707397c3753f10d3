package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
	"github.com/Y3454R/obadh-engine/internal/core/ports/driven"
	"github.com/Y3454R/obadh-engine/internal/core/ports/driving"
	"github.com/Y3454R/obadh-engine/internal/logger"
	"github.com/Y3454R/obadh-engine/internal/transliteration/definitions"
	"github.com/Y3454R/obadh-engine/internal/transliteration/renderer"
	"github.com/Y3454R/obadh-engine/internal/transliteration/sanitizer"
	"github.com/Y3454R/obadh-engine/internal/transliteration/tokenizer"
)

// Ensure TransliterationService implements the interface.
var _ driving.TransliterationService = (*TransliterationService)(nil)

// TransliterationService converts Roman phonetic text to Bengali.
type TransliterationService struct {
	sanitizer  *sanitizer.Sanitizer
	tokenizer  *tokenizer.Tokenizer
	renderer   *renderer.Renderer
	exceptions driven.ExceptionStore
}

// NewTransliterationService creates a new transliteration service.
// The exceptions parameter is optional (can be nil). Without it every
// word goes through the phonetic rules.
func NewTransliterationService(exceptions driven.ExceptionStore) *TransliterationService {
	defs := definitions.New()
	return &TransliterationService{
		sanitizer:  sanitizer.New(),
		tokenizer:  tokenizer.New(defs),
		renderer:   renderer.New(defs),
		exceptions: exceptions,
	}
}

// Transliterate converts a line of Roman text to Bengali.
func (s *TransliterationService) Transliterate(ctx context.Context, text string) (string, error) {
	report, err := s.convert(ctx, text, false)
	if err != nil {
		return "", err
	}
	return report.Output, nil
}

// Analyze converts a line and reports the per-token breakdown with
// stage timings.
func (s *TransliterationService) Analyze(ctx context.Context, text string) (*domain.Report, error) {
	logger.Section("Transliteration Analysis")
	return s.convert(ctx, text, true)
}

// Validate checks the input against the allowed character set.
func (s *TransliterationService) Validate(text string) error {
	return s.sanitizer.Validate(text)
}

// Clean strips characters outside the allowed set.
func (s *TransliterationService) Clean(text string) string {
	return s.sanitizer.Clean(text)
}

// convert runs the sanitize, tokenize and render stages over one line.
func (s *TransliterationService) convert(ctx context.Context, text string, analyse bool) (*domain.Report, error) {
	start := time.Now()

	if err := s.sanitizer.Validate(text); err != nil {
		logger.Warn("Input rejected: %v", err)
		return nil, err
	}
	sanitized := time.Now()

	tokens := s.tokenizer.TokenizeText(text)
	tokenized := time.Now()
	logger.Debug("Tokens: %d", len(tokens))

	var out strings.Builder
	var analyses []domain.TokenAnalysis
	for _, tok := range tokens {
		rendered, units := s.renderToken(ctx, tok)
		out.WriteString(rendered)
		if analyse {
			analyses = append(analyses, domain.TokenAnalysis{
				Token:  tok,
				Units:  units,
				Output: rendered,
			})
		}
	}
	done := time.Now()
	logger.Debug("Output: %q", out.String())

	return &domain.Report{
		Input:    text,
		Output:   out.String(),
		Analyses: analyses,
		Timings: domain.Timings{
			Sanitize:      sanitized.Sub(start),
			Tokenize:      tokenized.Sub(sanitized),
			Transliterate: done.Sub(tokenized),
			Total:         done.Sub(start),
		},
	}, nil
}

// renderToken converts one token. Word tokens are checked against the
// exception dictionary before the phonetic rules run.
func (s *TransliterationService) renderToken(ctx context.Context, tok domain.Token) (string, []domain.PhoneticUnit) {
	switch tok.Type {
	case domain.TokenTypeWord:
		if override, ok := s.lookupException(ctx, tok.Text); ok {
			logger.Debug("Dictionary hit: %q", tok.Text)
			return override, nil
		}
		units := s.tokenizer.TokenizeWord(tok.Text)
		return s.renderer.RenderUnits(units), units
	case domain.TokenTypeNumber:
		return s.renderer.RenderNumber(tok.Text), nil
	case domain.TokenTypePunctuation, domain.TokenTypeSymbol:
		return s.renderer.RenderSymbol(tok.Text), nil
	default:
		// Whitespace passes through verbatim.
		return tok.Text, nil
	}
}

// lookupException resolves a word against the exception store.
func (s *TransliterationService) lookupException(ctx context.Context, word string) (string, bool) {
	if s.exceptions == nil {
		return "", false
	}

	exc, err := s.exceptions.GetByRoman(ctx, word)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("Exception lookup failed for %q: %v", word, err)
		}
		return "", false
	}

	return exc.Bengali, true
}
