package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/fibmod/internal/errors"
	"github.com/agbru/fibmod/internal/fibonacci"
)

// ProgressBufferMultiplier sizes the progress channel per calculator so that
// a slow display rarely causes updates to be dropped.
const ProgressBufferMultiplier = 5

// observableCalculator is implemented by fibonacci.FibCalculator.
type observableCalculator interface {
	CalculateWithObservers(ctx context.Context, subject *fibonacci.ProgressSubject, calcIndex int, n uint64, opts fibonacci.Options) (uint64, error)
}

// ExecuteCalculations runs every calculator concurrently for index n and
// returns one result per calculator, in input order. A failing calculator
// does not cancel the others, so every algorithm gets a row in a comparison.
func ExecuteCalculations(ctx context.Context, calculators []fibonacci.Calculator, n uint64, opts fibonacci.Options, progressReporter ProgressReporter, out io.Writer) []CalculationResult {
	return ExecuteCalculationsWithObservers(ctx, calculators, n, opts, progressReporter, out)
}

// ExecuteCalculationsWithObservers is ExecuteCalculations with extra
// progress observers attached to every calculator that accepts them.
// Calculators that do not only feed the progress reporter.
func ExecuteCalculationsWithObservers(ctx context.Context, calculators []fibonacci.Calculator, n uint64, opts fibonacci.Options, progressReporter ProgressReporter, out io.Writer, observers ...fibonacci.ProgressObserver) []CalculationResult {
	var g errgroup.Group
	results := make([]CalculationResult, len(calculators))
	progressChan := make(chan fibonacci.ProgressUpdate, len(calculators)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(calculators), out)

	for i, calc := range calculators {
		idx, calculator := i, calc
		g.Go(func() error {
			startTime := time.Now()
			var res uint64
			var err error
			if oc, ok := calculator.(observableCalculator); ok && len(observers) > 0 {
				subject := fibonacci.NewProgressSubject()
				subject.Register(fibonacci.NewChannelObserver(progressChan))
				for _, o := range observers {
					subject.Register(o)
				}
				res, err = oc.CalculateWithObservers(ctx, subject, idx, n, opts)
			} else {
				res, err = calculator.Calculate(ctx, progressChan, idx, n, opts)
			}
			if err != nil && !apperrors.IsContextError(err) {
				err = apperrors.CalculationError{Algorithm: calculator.Name(), Cause: err}
			}
			results[idx] = CalculationResult{
				Name: calculator.Name(), Result: res, Duration: time.Since(startTime), Err: err,
			}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults sorts results (successes first, then by
// duration), renders the comparison table and checks that every successful
// calculator produced the same residue. It returns ExitErrorMismatch on
// disagreement and the error handler's code when nothing succeeded.
func AnalyzeComparisonResults(results []CalculationResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *CalculationResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
			continue
		}
		successCount++
		if firstValidResult == nil {
			firstValidResult = &results[i]
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm could complete the calculation.\n")
		return errHandler.HandleError(firstError, 0, out)
	}

	for _, res := range results {
		if res.Err == nil && res.Result != firstValidResult.Result {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the results of the algorithms.\n")
			return apperrors.ExitErrorMismatch
		}
	}

	if successCount < len(results) {
		fmt.Fprintf(out, "\nGlobal Status: Partial success. %d of %d algorithms completed and agree.\n", successCount, len(results))
	} else {
		fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	}
	presenter.PresentResult(*firstValidResult, opts, out)
	return apperrors.ExitSuccess
}

// FindBestResult returns the fastest successful result, or nil.
func FindBestResult(results []CalculationResult) *CalculationResult {
	var best *CalculationResult
	for i := range results {
		if results[i].Err == nil && (best == nil || results[i].Duration < best.Duration) {
			best = &results[i]
		}
	}
	return best
}

// FirstError returns the first error in results, or nil.
func FirstError(results []CalculationResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
