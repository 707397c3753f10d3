package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Y3454R/obadh-engine/internal/adapters/driven/storage/memory"
	"github.com/Y3454R/obadh-engine/internal/core/domain"
	"github.com/Y3454R/obadh-engine/internal/core/services"
)

// setupTestServices wires real services over in-memory stores and
// returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldTranslit := translitService
	oldDict := dictService
	oldBatch := batchService
	oldSettings := settingsService

	translit := services.NewTransliterationService(nil)
	translitService = translit
	dictService = services.NewDictionaryService(memory.NewExceptionStore())
	batchService = services.NewBatchService(translit)
	settingsService = services.NewSettingsService(memory.NewConfigStore())

	return func() {
		translitService = oldTranslit
		dictService = oldDict
		batchService = oldBatch
		settingsService = oldSettings
	}
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "obadh [text]", rootCmd.Use)
}

func TestRootCmd_Short(t *testing.T) {
	assert.Equal(t, "Transliterate Roman text to Bengali", rootCmd.Short)
}

func TestRootCmd_Long(t *testing.T) {
	assert.Contains(t, rootCmd.Long, "Avro")
	assert.Contains(t, rootCmd.Long, "stdin")
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.Flags().Lookup("verbose")
	require.NotNil(t, flag, "verbose flag should exist")
	assert.Equal(t, "v", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

func TestRootCmd_HasDebugFlag(t *testing.T) {
	flag := rootCmd.Flags().Lookup("debug")
	require.NotNil(t, flag, "debug flag should exist")
	assert.Equal(t, "d", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

func TestRootCmd_HasBenchmarkFlag(t *testing.T) {
	flag := rootCmd.Flags().Lookup("benchmark")
	require.NotNil(t, flag, "benchmark flag should exist")
	assert.Equal(t, "b", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestRootCmd_HasFormatFlag(t *testing.T) {
	flag := rootCmd.Flags().Lookup("format")
	require.NotNil(t, flag, "format flag should exist")
	assert.Equal(t, "f", flag.Shorthand)
	assert.Equal(t, "", flag.DefValue)
}

func TestRootCmd_HasPrettyFlag(t *testing.T) {
	flag := rootCmd.Flags().Lookup("pretty")
	require.NotNil(t, flag, "pretty flag should exist")
	assert.Equal(t, "p", flag.Shorthand)
}

func TestRootCmd_HasLenientFlag(t *testing.T) {
	flag := rootCmd.Flags().Lookup("lenient")
	require.NotNil(t, flag, "lenient flag should exist")
	assert.Equal(t, "", flag.Shorthand)
}

func TestRootCmd_ConvertsArguments(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ami"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "আমি\n", buf.String())
}

func TestRootCmd_JoinsMultipleArguments(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"mon", "bhalo"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "মন ভালো\n", buf.String())
}

func TestRootCmd_ReadsStdin(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetIn(strings.NewReader("mon bhalo\n"))
	rootCmd.SetArgs([]string{})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "মন ভালো\n", buf.String())
}

func TestRootCmd_EmptyInputShowsHelp(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs([]string{})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Usage:")
}

func TestRootCmd_VerboseEmitsReport(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--verbose", "ami"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootVerbose = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"token_analysis"`)
	assert.Contains(t, buf.String(), `"performance"`)
	assert.Contains(t, buf.String(), "আমি")
}

func TestRootCmd_FormatJSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--format", "json", "ami"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootFormat = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"input":"ami"`)
	assert.Contains(t, buf.String(), `"output":"আমি"`)
	// Token analysis is verbose-only detail.
	assert.NotContains(t, buf.String(), "token_analysis")
}

func TestRootCmd_FormatXML(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"-f", "xml", "mon"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootFormat = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "<result>")
	assert.Contains(t, buf.String(), "<output>মন</output>")
}

func TestRootCmd_InvalidFormat(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--format", "yaml", "ami"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootFormat = ""
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `output format "yaml"`)
}

func TestRootCmd_RejectsInvalidCharacters(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"café"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCharacters)
}

func TestRootCmd_LenientStripsInvalidCharacters(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--lenient", "bhaélo"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootLenient = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "ভালো\n", buf.String())
}

func TestRootCmd_BenchmarkText(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--benchmark", "3", "ami"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootBenchmark = 0
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Translation: আমি")
	assert.Contains(t, buf.String(), "Benchmark results (3 iterations):")
	assert.Contains(t, buf.String(), "Average total time:")
	assert.Contains(t, buf.String(), "Total run time:")
}

func TestRootCmd_BenchmarkJSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"-b", "2", "-f", "json", "ami"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootBenchmark = 0
		rootFormat = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"iterations":2`)
	assert.Contains(t, buf.String(), `"avg_total_ms"`)
	assert.Contains(t, buf.String(), `"output":"আমি"`)
}

func TestRootCmd_ServiceNotConfigured(t *testing.T) {
	oldService := translitService
	translitService = nil
	defer func() {
		translitService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ami"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "transliteration service not configured")
}
