package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/fibmod/internal/fibonacci"
)

// CalculationResult is the outcome of a single calculation.
type CalculationResult struct {
	// Name is the display name of the algorithm.
	Name string
	// Result is F(n) mod P. It is meaningless when Err is set.
	Result uint64
	// Duration is the wall-clock time of the calculation.
	Duration time.Duration
	// Err is the calculation error, if any.
	Err error
}

// PresentationOptions configures how results are presented.
type PresentationOptions struct {
	N       uint64
	Modulus uint64
	Details bool
}

// ProgressReporter displays calculation progress. DisplayProgress runs in
// its own goroutine until progressChan is closed, then calls wg.Done.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan fibonacci.ProgressUpdate, numCalculators int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan fibonacci.ProgressUpdate, numCalculators int, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan fibonacci.ProgressUpdate, numCalculators int, out io.Writer) {
	f(wg, progressChan, numCalculators, out)
}

// NullProgressReporter drains the progress channel without output. It is
// used in quiet and stdin modes.
type NullProgressReporter struct{}

// DisplayProgress drains the channel.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan fibonacci.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
	}
}

// ResultPresenter renders comparison tables and final results.
type ResultPresenter interface {
	// PresentComparisonTable renders one row per calculator.
	PresentComparisonTable(results []CalculationResult, out io.Writer)

	// PresentResult renders the final, agreed-upon result.
	PresentResult(result CalculationResult, opts PresentationOptions, out io.Writer)
}

// ErrorHandler maps a calculation error to an exit code, reporting it on out.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
