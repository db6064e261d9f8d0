// Package fibonacci computes Fibonacci numbers reduced modulo an integer P.
//
// The primary algorithm raises the generator matrix [[1,1],[1,0]] to the
// (n-1)-th power by repeated squaring, taking O(log n) time and O(1) memory
// for any n that fits in a uint64. Two linear baselines, a full table and a
// two-slot sliding window, are provided for cross-checking and comparison.
//
// All algorithms are exposed through the Calculator interface, so the
// orchestration layer can run and compare them interchangeably.
package fibonacci

//go:generate mockgen -source=calculator.go -destination=mocks/mock_calculator.go -package=mocks

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	calculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fibmod_calculations_total",
			Help: "The total number of modular Fibonacci calculations processed",
		},
		[]string{"algorithm", "status"},
	)
	calculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fibmod_calculation_duration_seconds",
			Help:    "The duration of modular Fibonacci calculations in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		},
		[]string{"algorithm"},
	)
)

// Calculator defines the public interface for a modular Fibonacci calculator.
type Calculator interface {
	// Calculate returns F(n) mod opts.Modulus. It is safe for concurrent use
	// and honors cancellation of ctx. Progress updates are sent to
	// progressChan without blocking; a nil channel disables them.
	Calculate(ctx context.Context, progressChan chan<- ProgressUpdate, calcIndex int, n uint64, opts Options) (uint64, error)

	// Name returns the display name of the algorithm.
	Name() string
}

// coreCalculator is a pure calculation algorithm. Options passed to it are
// already normalized and validated.
type coreCalculator interface {
	CalculateCore(ctx context.Context, reporter ProgressReporter, n uint64, opts Options) (uint64, error)
	Name() string
}

// FibCalculator decorates a coreCalculator with option validation, tracing,
// metrics, logging and progress plumbing.
type FibCalculator struct {
	core coreCalculator
}

// NewCalculator wraps core in a FibCalculator. It panics if core is nil.
func NewCalculator(core coreCalculator) Calculator {
	if core == nil {
		panic("fibonacci: the `coreCalculator` implementation cannot be nil")
	}
	return &FibCalculator{core: core}
}

// Name returns the name of the wrapped algorithm.
func (c *FibCalculator) Name() string {
	return c.core.Name()
}

// Calculate adapts progressChan into a ProgressSubject with a single
// ChannelObserver and delegates to CalculateWithObservers.
func (c *FibCalculator) Calculate(ctx context.Context, progressChan chan<- ProgressUpdate, calcIndex int, n uint64, opts Options) (uint64, error) {
	subject := NewProgressSubject()
	if progressChan != nil {
		subject.Register(NewChannelObserver(progressChan))
	}
	return c.CalculateWithObservers(ctx, subject, calcIndex, n, opts)
}

// CalculateWithObservers runs the calculation and reports progress to every
// observer registered on subject. A nil subject disables progress.
// Completion (1.0) is reported only on success.
func (c *FibCalculator) CalculateWithObservers(ctx context.Context, subject *ProgressSubject, calcIndex int, n uint64, opts Options) (result uint64, err error) {
	algoName := c.core.Name()

	ctx, span := otel.Tracer("fibonacci").Start(ctx, "Calculate")
	span.SetAttributes(
		attribute.String("fibonacci.algorithm", algoName),
		attribute.String("fibonacci.n", strconv.FormatUint(n, 10)),
	)
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		calculationsTotal.WithLabelValues(algoName, status).Inc()
		calculationDuration.WithLabelValues(algoName).Observe(duration)

		log.Debug().
			Str("algo", algoName).
			Uint64("n", n).
			Float64("duration", duration).
			Str("status", status).
			Msg("calculation completed")
	}()

	opts = normalizeOptions(opts)
	span.SetAttributes(attribute.String("fibonacci.modulus", strconv.FormatUint(uint64(opts.Modulus), 10)))
	if err = opts.Modulus.Validate(); err != nil {
		return 0, err
	}
	if err = ctx.Err(); err != nil {
		return 0, err
	}

	var reporter ProgressReporter
	if subject != nil {
		reporter = subject.AsProgressReporter(calcIndex)
	} else {
		reporter = func(float64) {}
	}

	result, err = c.core.CalculateCore(ctx, reporter, n, opts)
	if err != nil {
		return 0, err
	}
	reporter(1.0)
	return result, nil
}
