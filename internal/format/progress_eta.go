package format

import (
	"sync"
	"time"
)

// ProgressState tracks the latest progress of several calculators.
type ProgressState struct {
	mu       sync.Mutex
	progress []float64
}

// NewProgressState tracks numCalculators calculators, all at 0.
func NewProgressState(numCalculators int) *ProgressState {
	return &ProgressState{progress: make([]float64, numCalculators)}
}

// Update records value for index. Out-of-range indices are ignored.
func (s *ProgressState) Update(index int, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index >= 0 && index < len(s.progress) {
		s.progress[index] = value
	}
}

// CalculateAverage returns the mean progress over all calculators.
func (s *ProgressState) CalculateAverage() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.progress) == 0 {
		return 0
	}
	var sum float64
	for _, p := range s.progress {
		sum += p
	}
	return sum / float64(len(s.progress))
}

// ProgressWithETA adds a smoothed remaining-time estimate to ProgressState.
type ProgressWithETA struct {
	*ProgressState
	numCalculators int
	startTime      time.Time
	lastUpdate     time.Time
	lastProgress   float64
	progressRate   float64 // progress per second, exponentially smoothed
}

// NewProgressWithETA creates a tracker for numCalculators calculators.
func NewProgressWithETA(numCalculators int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState:  NewProgressState(numCalculators),
		numCalculators: numCalculators,
		startTime:      now,
		lastUpdate:     now,
	}
}

// maxETA caps estimates produced from a near-zero rate.
const maxETA = 24 * time.Hour

// UpdateWithETA records a progress value and returns the average progress
// and the estimated time remaining. The ETA is 0 until at least 100ms have
// elapsed and some progress was made.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (progress float64, eta time.Duration) {
	p.Update(index, value)
	progress = p.CalculateAverage()

	now := time.Now()
	elapsed := now.Sub(p.startTime)
	if elapsed < 100*time.Millisecond || progress <= 0.001 {
		p.lastUpdate = now
		p.lastProgress = progress
		return progress, 0
	}

	if sinceUpdate := now.Sub(p.lastUpdate).Seconds(); sinceUpdate > 0.05 {
		if delta := progress - p.lastProgress; delta > 0 {
			instant := delta / sinceUpdate
			if p.progressRate > 0 {
				p.progressRate = 0.7*p.progressRate + 0.3*instant
			} else {
				p.progressRate = progress / elapsed.Seconds()
			}
		}
		p.lastUpdate = now
		p.lastProgress = progress
	}

	return progress, p.eta(progress)
}

// GetETA returns the current estimate without recording progress.
func (p *ProgressWithETA) GetETA() time.Duration {
	return p.eta(p.CalculateAverage())
}

func (p *ProgressWithETA) eta(progress float64) time.Duration {
	if p.progressRate <= 0 || progress >= 1.0 {
		return 0
	}
	eta := time.Duration((1.0 - progress) / p.progressRate * float64(time.Second))
	if eta > maxETA {
		eta = maxETA
	}
	return eta
}
