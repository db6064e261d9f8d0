package orchestration

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	apperrors "github.com/agbru/fibmod/internal/errors"
	"github.com/agbru/fibmod/internal/fibonacci"
	"github.com/agbru/fibmod/internal/fibonacci/mocks"
)

// recordingPresenter records what AnalyzeComparisonResults presents.
type recordingPresenter struct {
	table  []CalculationResult
	result *CalculationResult
	opts   PresentationOptions
}

func (p *recordingPresenter) PresentComparisonTable(results []CalculationResult, _ io.Writer) {
	p.table = append([]CalculationResult(nil), results...)
}

func (p *recordingPresenter) PresentResult(result CalculationResult, opts PresentationOptions, _ io.Writer) {
	p.result = &result
	p.opts = opts
}

type exitCodeHandler struct{}

func (exitCodeHandler) HandleError(err error, d time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, d, out, apperrors.DefaultColorProvider{})
}

func newMockCalculator(ctrl *gomock.Controller, name string, result uint64, err error) *mocks.MockCalculator {
	m := mocks.NewMockCalculator(ctrl)
	m.EXPECT().Name().Return(name).AnyTimes()
	m.EXPECT().
		Calculate(gomock.Any(), gomock.Any(), gomock.Any(), uint64(50), gomock.Any()).
		DoAndReturn(func(_ context.Context, ch chan<- fibonacci.ProgressUpdate, idx int, _ uint64, _ fibonacci.Options) (uint64, error) {
			if ch != nil {
				ch <- fibonacci.ProgressUpdate{CalculatorIndex: idx, Value: 1.0}
			}
			return result, err
		})
	return m
}

func TestExecuteCalculations(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	calcs := []fibonacci.Calculator{
		newMockCalculator(ctrl, "A", 586268941, nil),
		newMockCalculator(ctrl, "B", 0, errors.New("boom")),
	}

	results := ExecuteCalculations(context.Background(), calcs, 50, fibonacci.Options{}, NullProgressReporter{}, io.Discard)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Name != "A" || results[0].Result != 586268941 || results[0].Err != nil {
		t.Errorf("result[0] = %+v", results[0])
	}
	var cerr apperrors.CalculationError
	if !errors.As(results[1].Err, &cerr) || cerr.Algorithm != "B" {
		t.Errorf("result[1].Err = %v, want CalculationError for B", results[1].Err)
	}
}

func TestExecuteCalculations_ContextErrorsAreNotWrapped(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	calcs := []fibonacci.Calculator{newMockCalculator(ctrl, "slow", 0, context.DeadlineExceeded)}
	results := ExecuteCalculations(context.Background(), calcs, 50, fibonacci.Options{}, NullProgressReporter{}, io.Discard)
	if results[0].Err != context.DeadlineExceeded {
		t.Errorf("Err = %v, want bare context.DeadlineExceeded", results[0].Err)
	}
}

func TestExecuteCalculations_DeliversProgress(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	calcs := []fibonacci.Calculator{
		newMockCalculator(ctrl, "A", 1, nil),
		newMockCalculator(ctrl, "B", 1, nil),
	}

	var mu sync.Mutex
	seen := map[int]bool{}
	reporter := ProgressReporterFunc(func(wg *sync.WaitGroup, ch <-chan fibonacci.ProgressUpdate, n int, _ io.Writer) {
		defer wg.Done()
		if n != 2 {
			t.Errorf("numCalculators = %d, want 2", n)
		}
		for u := range ch {
			mu.Lock()
			seen[u.CalculatorIndex] = true
			mu.Unlock()
		}
	})

	ExecuteCalculations(context.Background(), calcs, 50, fibonacci.Options{}, reporter, io.Discard)
	if !seen[0] || !seen[1] {
		t.Errorf("progress seen for %v, want both calculators", seen)
	}
}

// TestExecuteCalculations_RealCalculators runs the registered calculators
// end to end, including a canceled context.
func TestExecuteCalculations_RealCalculators(t *testing.T) {
	t.Parallel()

	calcs := GetCalculatorsToRun("all", fibonacci.NewDefaultFactory())
	results := ExecuteCalculations(context.Background(), calcs, 100000, fibonacci.Options{}, NullProgressReporter{}, io.Discard)
	for _, r := range results {
		if r.Err != nil || r.Result != 911435502 {
			t.Errorf("%s: %d, %v; want 911435502", r.Name, r.Result, r.Err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results = ExecuteCalculations(ctx, calcs, 100000, fibonacci.Options{}, NullProgressReporter{}, io.Discard)
	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("%s: err = %v, want context.Canceled", r.Name, r.Err)
		}
	}
}

func TestAnalyzeComparisonResults(t *testing.T) {
	t.Parallel()

	opts := PresentationOptions{N: 50, Modulus: 1_000_000_007}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		p := &recordingPresenter{}
		results := []CalculationResult{
			{Name: "slow", Result: 586268941, Duration: 2 * time.Millisecond},
			{Name: "fast", Result: 586268941, Duration: time.Millisecond},
		}
		var out bytes.Buffer
		code := AnalyzeComparisonResults(results, opts, p, exitCodeHandler{}, &out)
		if code != apperrors.ExitSuccess {
			t.Fatalf("code = %d, want success", code)
		}
		if p.result == nil || p.result.Name != "fast" {
			t.Errorf("presented %+v, want the fastest result", p.result)
		}
		if p.opts != opts {
			t.Errorf("opts = %+v, want %+v", p.opts, opts)
		}
		if !strings.Contains(out.String(), "Success") {
			t.Errorf("output %q lacks status", out.String())
		}
	})

	t.Run("mismatch", func(t *testing.T) {
		t.Parallel()
		results := []CalculationResult{
			{Name: "a", Result: 1, Duration: time.Millisecond},
			{Name: "b", Result: 2, Duration: time.Millisecond},
		}
		var out bytes.Buffer
		if code := AnalyzeComparisonResults(results, opts, &recordingPresenter{}, exitCodeHandler{}, &out); code != apperrors.ExitErrorMismatch {
			t.Errorf("code = %d, want %d", code, apperrors.ExitErrorMismatch)
		}
	})

	t.Run("partial", func(t *testing.T) {
		t.Parallel()
		p := &recordingPresenter{}
		results := []CalculationResult{
			{Name: "window", Err: context.DeadlineExceeded, Duration: time.Second},
			{Name: "matrix", Result: 209783453, Duration: time.Microsecond},
		}
		var out bytes.Buffer
		code := AnalyzeComparisonResults(results, opts, p, exitCodeHandler{}, &out)
		if code != apperrors.ExitSuccess {
			t.Errorf("code = %d, want success", code)
		}
		if p.table[0].Name != "matrix" {
			t.Errorf("successes should sort first, got %q", p.table[0].Name)
		}
		if !strings.Contains(out.String(), "Partial success") {
			t.Errorf("output %q lacks partial status", out.String())
		}
	})

	t.Run("all failed", func(t *testing.T) {
		t.Parallel()
		results := []CalculationResult{
			{Name: "table", Err: apperrors.CalculationError{Algorithm: "table", Cause: apperrors.MemoryError{Requested: 1 << 40, Limit: 128 << 20}}},
		}
		var out bytes.Buffer
		if code := AnalyzeComparisonResults(results, opts, &recordingPresenter{}, exitCodeHandler{}, &out); code != apperrors.ExitErrorMemory {
			t.Errorf("code = %d, want %d", code, apperrors.ExitErrorMemory)
		}
	})
}

func TestFindBestResultAndFirstError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	results := []CalculationResult{
		{Name: "a", Err: boom},
		{Name: "b", Duration: 3 * time.Millisecond},
		{Name: "c", Duration: time.Millisecond},
	}
	if best := FindBestResult(results); best == nil || best.Name != "c" {
		t.Errorf("FindBestResult = %+v, want c", best)
	}
	if err := FirstError(results); err != boom {
		t.Errorf("FirstError = %v, want boom", err)
	}
	if FindBestResult(results[:1]) != nil {
		t.Error("FindBestResult with only failures should be nil")
	}
}

type countingObserver struct {
	mu     sync.Mutex
	finals map[int]bool
}

func (o *countingObserver) Update(idx int, progress float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if progress == 1.0 {
		o.finals[idx] = true
	}
}

func TestExecuteCalculationsWithObservers(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	calcs := append(GetCalculatorsToRun("all", fibonacci.NewDefaultFactory()),
		newMockCalculator(ctrl, "mock", 517691607, nil))
	obs := &countingObserver{finals: map[int]bool{}}

	results := ExecuteCalculationsWithObservers(context.Background(), calcs, 50,
		fibonacci.Options{}, NullProgressReporter{}, io.Discard, obs)
	for _, r := range results[:3] {
		if r.Err != nil || r.Result != 586268941 {
			t.Errorf("%s: %d, %v", r.Name, r.Result, r.Err)
		}
	}
	for i := 0; i < 3; i++ {
		if !obs.finals[i] {
			t.Errorf("observer missed completion of calculator %d", i)
		}
	}
	// The mock does not accept observers and only feeds the channel.
	if obs.finals[3] {
		t.Error("observer notified for a calculator without observer support")
	}
}
