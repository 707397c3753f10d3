package mcp

import (
	"context"
	"io"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
)

// mockTranslitService is a mock implementation of driving.TransliterationService.
type mockTranslitService struct {
	result string
	report *domain.Report
	err    error
}

func (m *mockTranslitService) Transliterate(_ context.Context, _ string) (string, error) {
	return m.result, m.err
}

func (m *mockTranslitService) Analyze(_ context.Context, _ string) (*domain.Report, error) {
	return m.report, m.err
}

func (m *mockTranslitService) Validate(_ string) error {
	return m.err
}

func (m *mockTranslitService) Clean(text string) string {
	return text
}

// mockDictionaryService is a mock implementation of driving.DictionaryService.
type mockDictionaryService struct {
	exception  *domain.Exception
	exceptions []domain.Exception
	err        error
}

func (m *mockDictionaryService) Add(_ context.Context, _, _, _ string) (*domain.Exception, error) {
	return m.exception, m.err
}

func (m *mockDictionaryService) Get(_ context.Context, _ string) (*domain.Exception, error) {
	return m.exception, m.err
}

func (m *mockDictionaryService) List(_ context.Context) ([]domain.Exception, error) {
	return m.exceptions, m.err
}

func (m *mockDictionaryService) Update(_ context.Context, _, _, _, _ string) (*domain.Exception, error) {
	return m.exception, m.err
}

func (m *mockDictionaryService) Remove(_ context.Context, _ string) error {
	return m.err
}

func (m *mockDictionaryService) Lookup(_ context.Context, _ string) (string, bool) {
	return "", false
}

func (m *mockDictionaryService) Import(_ context.Context, _ io.Reader) (int, error) {
	return 0, m.err
}

func (m *mockDictionaryService) Export(_ context.Context, _ io.Writer) error {
	return m.err
}
