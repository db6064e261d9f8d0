package orchestration

import (
	"time"

	"github.com/agbru/fibmod/internal/fibonacci"
	"github.com/agbru/fibmod/internal/format"
)

// ProgressAggregator folds per-calculator updates into an average progress
// and an ETA for display.
type ProgressAggregator struct {
	state          *format.ProgressWithETA
	numCalculators int
}

// NewProgressAggregator returns nil when numCalculators <= 0.
func NewProgressAggregator(numCalculators int) *ProgressAggregator {
	if numCalculators <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:          format.NewProgressWithETA(numCalculators),
		numCalculators: numCalculators,
	}
}

// AggregatedProgress is the result of folding in one update.
type AggregatedProgress struct {
	CalculatorIndex int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// Update folds in one update.
func (a *ProgressAggregator) Update(update fibonacci.ProgressUpdate) AggregatedProgress {
	avg, eta := a.state.UpdateWithETA(update.CalculatorIndex, update.Value)
	return AggregatedProgress{
		CalculatorIndex: update.CalculatorIndex,
		Value:           update.Value,
		AverageProgress: avg,
		ETA:             eta,
	}
}

// CalculateAverage returns the current average without an update.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current ETA without an update.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// NumCalculators returns the number of tracked calculators.
func (a *ProgressAggregator) NumCalculators() int {
	return a.numCalculators
}

// DrainChannel discards remaining updates until ch is closed.
func DrainChannel(ch <-chan fibonacci.ProgressUpdate) {
	for range ch {
	}
}
