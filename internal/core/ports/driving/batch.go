package driving

import (
	"context"
	"io"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
)

// BatchRequest describes a single batch run over line-oriented input.
type BatchRequest struct {
	// Input supplies Roman text, one unit of work per line.
	Input io.Reader

	// Output receives the converted lines in input order.
	Output io.Writer

	// Workers is the number of concurrent conversion workers. Values
	// below one fall back to the configured default.
	Workers int

	// Lenient strips invalid characters instead of failing the line.
	Lenient bool

	// Format selects the per-line output encoding.
	Format domain.OutputFormat
}

// WatchRequest describes a file watch that re-runs a batch whenever
// the input file changes.
type WatchRequest struct {
	// InputPath is the file to watch and convert.
	InputPath string

	// OutputPath receives each run's converted lines, truncated on
	// every run. When empty, runs write to Output instead.
	OutputPath string

	// Output is the writer for runs without an OutputPath.
	Output io.Writer

	// Workers, Lenient and Format carry the same meaning as in
	// BatchRequest.
	Workers int
	Lenient bool
	Format  domain.OutputFormat
}

// BatchService converts many lines in one run.
type BatchService interface {
	// Run converts every line of the request input and writes results
	// in input order. In strict mode the first failing line aborts the
	// run; in lenient mode failing lines are cleaned first and passed
	// through unchanged if they still fail.
	Run(ctx context.Context, req BatchRequest) (*domain.BatchSummary, error)

	// Watch runs the batch once, then re-runs it whenever the input
	// file changes, until the context is cancelled.
	Watch(ctx context.Context, req WatchRequest) error
}
