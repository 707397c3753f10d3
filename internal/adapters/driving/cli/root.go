// Package cli provides the command line interface for obadh.
// It implements a driving adapter following hexagonal architecture:
// commands depend only on the driving ports and receive their service
// implementations from the composition root via the Set* functions.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
	"github.com/Y3454R/obadh-engine/internal/core/ports/driving"
	"github.com/Y3454R/obadh-engine/internal/logger"
	"github.com/Y3454R/obadh-engine/internal/output"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by the composition root before Execute runs.
var (
	translitService driving.TransliterationService
	dictService     driving.DictionaryService
	batchService    driving.BatchService
	settingsService driving.SettingsService
)

// SetTransliterationService injects the transliteration service.
func SetTransliterationService(s driving.TransliterationService) {
	translitService = s
}

// SetDictionaryService injects the dictionary service.
func SetDictionaryService(s driving.DictionaryService) {
	dictService = s
}

// SetBatchService injects the batch service.
func SetBatchService(s driving.BatchService) {
	batchService = s
}

// SetSettingsService injects the settings service.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var (
	rootDebug     bool
	rootVerbose   bool
	rootBenchmark int
	rootPretty    bool
	rootFormat    string
	rootLenient   bool
)

var rootCmd = &cobra.Command{
	Use:   "obadh [text]",
	Short: "Transliterate Roman text to Bengali",
	Long: `Obadh converts Roman phonetic text to Bengali using Avro rules.

Text can be passed as arguments or piped on stdin:

  obadh "amar sonar bangla"
  echo "ami tomay bhalobashi" | obadh

Use --verbose for a JSON report with per-token analysis and stage
timings, --format to render as json, xml, html or markdown, and
--benchmark to measure conversion performance over many iterations.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.Flags().BoolVarP(&rootDebug, "debug", "d", false, "print phonetic segmentation to stderr")
	rootCmd.Flags().BoolVarP(&rootVerbose, "verbose", "v", false, "emit a JSON report with token analysis and timings")
	rootCmd.Flags().IntVarP(&rootBenchmark, "benchmark", "b", 0, "repeat the conversion N times and report average timings")
	rootCmd.Flags().BoolVarP(&rootPretty, "pretty", "p", false, "indent structured output")
	rootCmd.Flags().StringVarP(&rootFormat, "format", "f", "", "output format (text, json, xml, html, markdown)")
	rootCmd.Flags().BoolVar(&rootLenient, "lenient", false, "strip invalid characters instead of failing")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	if translitService == nil {
		return errors.New("transliteration service not configured")
	}

	logger.SetVerbose(rootDebug)

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return cmd.Help()
	}

	if rootLenient {
		text = translitService.Clean(text)
	}

	if rootBenchmark > 0 {
		return runBenchmark(cmd, text, rootBenchmark)
	}

	format, err := resolveFormat()
	if err != nil {
		return err
	}

	// The plain text default needs no report assembly.
	if format == domain.OutputFormatText && !rootVerbose {
		result, err := translitService.Transliterate(cmd.Context(), text)
		if err != nil {
			return fmt.Errorf("transliteration failed: %w", err)
		}
		cmd.Println(result)
		return nil
	}

	report, err := translitService.Analyze(cmd.Context(), text)
	if err != nil {
		return fmt.Errorf("transliteration failed: %w", err)
	}

	// Token analysis and timings are verbose-only detail.
	if !rootVerbose {
		report.Analyses = nil
		report.Timings = domain.Timings{}
	}

	rendered, err := output.Render(format, report, output.Options{
		Pretty:  resolvePretty(),
		Verbose: rootVerbose,
	})
	if err != nil {
		return err
	}
	cmd.Println(rendered)
	return nil
}

// readInput returns the text to convert: joined positional arguments,
// or everything piped on stdin when no arguments are given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	// The terminal guard only applies to the real stdin; an injected
	// reader is always consumed.
	if cmd.InOrStdin() == os.Stdin && term.IsTerminal(int(os.Stdin.Fd())) {
		return "", nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// currentSettings returns the stored settings, falling back to
// defaults when no settings service is wired or loading fails.
func currentSettings() domain.AppSettings {
	if settingsService == nil {
		return domain.DefaultAppSettings()
	}
	settings, err := settingsService.Get()
	if err != nil || settings == nil {
		return domain.DefaultAppSettings()
	}
	return *settings
}

// resolveFormat picks the output format: the explicit flag wins, then
// verbose mode forces JSON, then the configured default applies.
func resolveFormat() (domain.OutputFormat, error) {
	if rootFormat != "" {
		return domain.ParseOutputFormat(rootFormat)
	}
	if rootVerbose {
		return domain.OutputFormatJSON, nil
	}
	return currentSettings().Output.Format, nil
}

func resolvePretty() bool {
	return rootPretty || currentSettings().Output.Pretty
}

type benchmarkStats struct {
	Iterations         int     `json:"iterations"`
	AvgTotalMs         float64 `json:"avg_total_ms"`
	AvgSanitizeMs      float64 `json:"avg_sanitize_ms"`
	AvgTokenizeMs      float64 `json:"avg_tokenize_ms"`
	AvgTransliterateMs float64 `json:"avg_transliterate_ms"`
	TotalRunTimeMs     float64 `json:"total_run_time_ms"`
}

type benchmarkOutput struct {
	Input     string         `json:"input"`
	Output    string         `json:"output"`
	Benchmark benchmarkStats `json:"benchmark"`
}

// runBenchmark converts the text repeatedly and reports the average
// per-stage timings, as text or JSON depending on the active format.
func runBenchmark(cmd *cobra.Command, text string, iterations int) error {
	var sum domain.Timings
	var report *domain.Report

	start := time.Now()
	for i := 0; i < iterations; i++ {
		r, err := translitService.Analyze(cmd.Context(), text)
		if err != nil {
			return fmt.Errorf("benchmark failed: %w", err)
		}
		sum.Sanitize += r.Timings.Sanitize
		sum.Tokenize += r.Timings.Tokenize
		sum.Transliterate += r.Timings.Transliterate
		sum.Total += r.Timings.Total
		report = r
	}
	elapsed := time.Since(start)

	n := time.Duration(iterations)
	avg := domain.Timings{
		Sanitize:      sum.Sanitize / n,
		Tokenize:      sum.Tokenize / n,
		Transliterate: sum.Transliterate / n,
		Total:         sum.Total / n,
	}

	format, err := resolveFormat()
	if err != nil {
		return err
	}
	if format == domain.OutputFormatJSON {
		return printBenchmarkJSON(cmd, report, avg, elapsed, iterations)
	}

	perf := avg.Performance()
	cmd.Printf("Translation: %s\n", report.Output)
	cmd.Printf("Benchmark results (%d iterations):\n", iterations)
	cmd.Printf("  Average total time: %.4f ms\n", perf.TotalMs)
	cmd.Printf("  Average sanitize time: %.4f ms\n", perf.SanitizeMs)
	cmd.Printf("  Average tokenize time: %.4f ms\n", perf.TokenizeMs)
	cmd.Printf("  Average transliterate time: %.4f ms\n", perf.TransliterateMs)
	cmd.Printf("  Total run time: %.4f ms\n", float64(elapsed.Microseconds())/1000.0)
	return nil
}

func printBenchmarkJSON(
	cmd *cobra.Command,
	report *domain.Report,
	avg domain.Timings,
	elapsed time.Duration,
	iterations int,
) error {
	perf := avg.Performance()
	out := benchmarkOutput{
		Input:  report.Input,
		Output: report.Output,
		Benchmark: benchmarkStats{
			Iterations:         iterations,
			AvgTotalMs:         perf.TotalMs,
			AvgSanitizeMs:      perf.SanitizeMs,
			AvgTokenizeMs:      perf.TokenizeMs,
			AvgTransliterateMs: perf.TransliterateMs,
			TotalRunTimeMs:     float64(elapsed.Microseconds()) / 1000.0,
		},
	}

	var data []byte
	var err error
	if resolvePretty() {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return fmt.Errorf("encoding benchmark results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
