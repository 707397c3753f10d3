package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
	"github.com/Y3454R/obadh-engine/internal/core/ports/driving"
)

var (
	batchWorkers int
	batchWatch   bool
	batchOutput  string
	batchFormat  string
	batchLenient bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Convert Roman text line by line",
	Long: `Batch converts a file or stdin to Bengali, one line at a time.

Lines are converted concurrently but written in input order. In strict
mode the first invalid line aborts the run; with --lenient invalid
characters are stripped and unconvertible lines pass through unchanged.

Use --watch to keep converting a file whenever it changes:

  obadh batch poems.txt --output poems.bn.txt --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "number of parallel workers (0 = configured default)")
	batchCmd.Flags().BoolVar(&batchWatch, "watch", false, "re-run whenever the input file changes")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "write results to a file instead of stdout")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "", "per-line output format (text, json, xml)")
	batchCmd.Flags().BoolVar(&batchLenient, "lenient", false, "strip invalid characters instead of failing")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	if batchService == nil {
		return errors.New("batch service not configured")
	}

	settings := currentSettings()

	workers := batchWorkers
	if workers <= 0 {
		workers = settings.Batch.Workers
	}
	lenient := batchLenient || settings.Batch.Lenient

	format := domain.OutputFormatText
	if batchFormat != "" {
		parsed, err := domain.ParseOutputFormat(batchFormat)
		if err != nil {
			return err
		}
		format = parsed
	}

	if batchWatch {
		if len(args) == 0 {
			return errors.New("watch mode requires an input file")
		}
		req := driving.WatchRequest{
			InputPath:  args[0],
			OutputPath: batchOutput,
			Output:     cmd.OutOrStdout(),
			Workers:    workers,
			Lenient:    lenient,
			Format:     format,
		}
		cmd.PrintErrf("Watching %s, press Ctrl+C to stop.\n", args[0])
		err := batchService.Watch(cmd.Context(), req)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	req := driving.BatchRequest{
		Input:   cmd.InOrStdin(),
		Output:  cmd.OutOrStdout(),
		Workers: workers,
		Lenient: lenient,
		Format:  format,
	}

	if len(args) > 0 {
		in, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer in.Close()
		req.Input = in
	}

	if batchOutput != "" {
		out, err := os.Create(batchOutput)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer out.Close()
		req.Output = out
	}

	summary, err := batchService.Run(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	if summary.Failed > 0 {
		cmd.PrintErrf("Converted %d lines (%d failed) in %s\n",
			summary.Lines, summary.Failed, summary.Duration.Round(time.Millisecond))
	} else {
		cmd.PrintErrf("Converted %d lines in %s\n",
			summary.Lines, summary.Duration.Round(time.Millisecond))
	}
	return nil
}
