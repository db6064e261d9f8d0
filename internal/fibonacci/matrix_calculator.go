package fibonacci

import "context"

// MatrixExponentiation computes F(n) mod P as the top-left entry of G^(n-1),
// where G is the generator matrix.
type MatrixExponentiation struct{}

// Name returns the display name of the algorithm.
func (c *MatrixExponentiation) Name() string {
	return "Matrix Exponentiation (O(log n))"
}

// CalculateCore runs the square-and-multiply loop, polling ctx and reporting
// progress once per exponent bit.
func (c *MatrixExponentiation) CalculateCore(ctx context.Context, reporter ProgressReporter, n uint64, opts Options) (uint64, error) {
	if n < 2 {
		return n, nil
	}
	m, err := powMod(Generator(), n-1, opts.Modulus, func(bit, numBits int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		reporter(float64(bit) / float64(numBits))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return m.A, nil
}
