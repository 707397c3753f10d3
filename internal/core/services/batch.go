package services

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
	"github.com/Y3454R/obadh-engine/internal/core/ports/driving"
	"github.com/Y3454R/obadh-engine/internal/logger"
	"github.com/Y3454R/obadh-engine/internal/output"
)

// Ensure BatchService implements the interface.
var _ driving.BatchService = (*BatchService)(nil)

// watchDebounce is the minimum gap between batch re-runs in watch mode.
// Editors fire several events per save; only the first one triggers.
const watchDebounce = 500 * time.Millisecond

// batchJob is one input line with its ordinal.
type batchJob struct {
	index int
	line  string
}

// batchResult is one converted line with its ordinal.
type batchResult struct {
	index  int
	output string
	err    error
}

// BatchService converts many lines in one run using a bounded worker
// pool, preserving input order.
type BatchService struct {
	translit driving.TransliterationService
}

// NewBatchService creates a new batch service.
func NewBatchService(translit driving.TransliterationService) *BatchService {
	return &BatchService{translit: translit}
}

// Run converts every line of the request input and writes results in
// input order.
//
//nolint:gocognit // Pipeline orchestration coordinating producer, workers and collector
func (s *BatchService) Run(ctx context.Context, req driving.BatchRequest) (*domain.BatchSummary, error) {
	start := time.Now()

	workers := req.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	format := req.Format
	if format == "" {
		format = domain.OutputFormatText
	}

	logger.Section("Batch Run")
	logger.Debug("Workers: %d, lenient: %t, format: %s", workers, req.Lenient, format)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan batchJob, workers)
	results := make(chan batchResult, workers)
	scanErr := make(chan error, 1)

	// 1. Producer: feed lines with their ordinal.
	go func() {
		defer close(jobs)
		scanner := bufio.NewScanner(req.Input)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		index := 0
		for scanner.Scan() {
			select {
			case jobs <- batchJob{index: index, line: scanner.Text()}:
				index++
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			scanErr <- err
		}
	}()

	// 2. Workers: convert lines in parallel.
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				converted, err := s.convertLine(ctx, job.line, req.Lenient, format)
				select {
				case results <- batchResult{index: job.index, output: converted, err: err}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// 3. Collector: reassemble input order and write.
	w := bufio.NewWriter(req.Output)
	pending := make(map[int]batchResult)
	next := 0
	failed := 0

	for res := range results {
		pending[res.index] = res
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)

			if r.err != nil {
				if !req.Lenient {
					cancel()
					//nolint:errcheck // Lines before the failure are already valid output
					_ = w.Flush()
					return nil, fmt.Errorf("line %d: %w", next+1, r.err)
				}
				failed++
				logger.Warn("Line %d failed: %v", next+1, r.err)
			}

			if _, err := w.WriteString(r.output + "\n"); err != nil {
				cancel()
				return nil, fmt.Errorf("write output: %w", err)
			}
			next++
		}
	}

	select {
	case err := <-scanErr:
		return nil, fmt.Errorf("read input: %w", err)
	default:
	}

	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("flush output: %w", err)
	}

	summary := &domain.BatchSummary{
		Lines:    next,
		Failed:   failed,
		Duration: time.Since(start),
	}
	logger.Info("Batch complete: %d lines, %d failed in %s", summary.Lines, summary.Failed, summary.Duration)
	return summary, nil
}

// convertLine converts one line in the requested format. Lenient mode
// strips invalid characters first; a line that still fails is passed
// through unchanged with its error.
func (s *BatchService) convertLine(ctx context.Context, line string, lenient bool, format domain.OutputFormat) (string, error) {
	input := line
	if lenient {
		input = s.translit.Clean(line)
	}

	converted, err := s.translit.Transliterate(ctx, input)
	if err != nil {
		if lenient {
			return line, err
		}
		return "", err
	}

	if format == domain.OutputFormatText {
		return converted, nil
	}

	report := &domain.Report{Input: line, Output: converted}
	return output.Render(format, report, output.Options{})
}

// Watch runs the batch once, then re-runs it whenever the input file
// changes, until the context is cancelled.
func (s *BatchService) Watch(ctx context.Context, req driving.WatchRequest) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directory rather than the file itself, so that
	// editors replacing the file do not silence the watch.
	dir := filepath.Dir(req.InputPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target, err := filepath.Abs(req.InputPath)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", req.InputPath, err)
	}

	limiter := rate.NewLimiter(rate.Every(watchDebounce), 1)

	logger.Info("Watching %s", req.InputPath)
	if err := s.runOnce(ctx, req); err != nil {
		logger.Warn("Batch run failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !limiter.Allow() {
				continue
			}

			logger.Debug("Change detected: %s", event.Name)
			if err := s.runOnce(ctx, req); err != nil {
				logger.Warn("Batch run failed: %v", err)
			}

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", werr)
		}
	}
}

// runOnce executes one batch pass over the watched file.
func (s *BatchService) runOnce(ctx context.Context, req driving.WatchRequest) error {
	in, err := os.Open(req.InputPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", req.InputPath, err)
	}
	defer in.Close()

	var out io.Writer = req.Output
	if req.OutputPath != "" {
		f, err := os.Create(req.OutputPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", req.OutputPath, err)
		}
		defer f.Close()
		out = f
	}

	summary, err := s.Run(ctx, driving.BatchRequest{
		Input:   in,
		Output:  out,
		Workers: req.Workers,
		Lenient: req.Lenient,
		Format:  req.Format,
	})
	if err != nil {
		return err
	}

	logger.Info("Converted %d lines", summary.Lines)
	return nil
}
