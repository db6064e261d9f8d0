package fibonacci

import "context"

// WindowCalculator runs the recurrence over a two-slot window indexed by
// parity: slot i&1 holds F(i) once step i is done. It takes O(n) time and
// O(1) memory.
type WindowCalculator struct{}

// Name returns the display name of the algorithm.
func (c *WindowCalculator) Name() string {
	return "Sliding Window (O(n) time, O(1) memory)"
}

// CalculateCore advances the window n-1 times, polling ctx and reporting
// progress every CancellationCheckInterval steps.
func (c *WindowCalculator) CalculateCore(ctx context.Context, reporter ProgressReporter, n uint64, opts Options) (uint64, error) {
	if n < 2 {
		return n, nil
	}

	p := opts.Modulus
	w := [2]uint64{0, p.Reduce(1)}
	for i := uint64(2); i <= n && i != 0; i++ {
		w[i&1] = p.add(w[0], w[1])
		if i&(CancellationCheckInterval-1) == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			reporter(float64(i) / float64(n))
		}
	}
	return w[n&1], nil
}
