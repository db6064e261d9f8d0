//go:build gmp

// This file provides an exact-arithmetic calculator backed by GMP, compiled
// only with the "gmp" build tag (go build -tags=gmp, requires libgmp).
// It computes the exact F(n) by fast doubling and reduces it once at the
// end, which makes it an independent oracle for the modular calculators
// on indices small enough for F(n) to be materialized.

package fibonacci

import (
	"context"
	"math/bits"

	"github.com/ncw/gmp"

	apperrors "github.com/agbru/fibmod/internal/errors"
)

// gmpMaxIndex bounds the index accepted by GMPCalculator. F(n) has about
// 0.694·n bits, so this keeps operands around 128 MiB.
const gmpMaxIndex = 1 << 30

func init() {
	_ = RegisterCalculator("gmp", func() coreCalculator { return &GMPCalculator{} })
}

// GMPCalculator computes the exact F(n) with GMP and reduces it modulo P.
type GMPCalculator struct{}

// Name returns the display name of the algorithm.
func (c *GMPCalculator) Name() string {
	return "GMP Exact Fast Doubling (reference)"
}

// gmpDoublingStep maps (F(k), F(k+1)) in (a, b) to (F(2k), F(2k+1)).
func gmpDoublingStep(a, b, t1, t2 *gmp.Int) {
	t1.Lsh(b, 1)
	t1.Sub(t1, a)
	t1.Mul(a, t1)

	t2.Mul(a, a)
	a.Mul(b, b)
	t2.Add(t2, a)

	a.Set(t1)
	b.Set(t2)
}

// gmpAdditionStep maps (F(k), F(k+1)) in (a, b) to (F(k+1), F(k+2)).
func gmpAdditionStep(a, b, t *gmp.Int) {
	t.Add(a, b)
	a.Set(b)
	b.Set(t)
}

// CalculateCore runs fast doubling from the most significant bit of n.
func (c *GMPCalculator) CalculateCore(ctx context.Context, reporter ProgressReporter, n uint64, opts Options) (uint64, error) {
	if n < 2 {
		return n, nil
	}
	if n > gmpMaxIndex {
		return 0, apperrors.MemoryError{Requested: n / 8, Limit: gmpMaxIndex / 8}
	}

	a := gmp.NewInt(0)
	b := gmp.NewInt(1)
	t1 := gmp.NewInt(0)
	t2 := gmp.NewInt(0)

	numBits := bits.Len64(n)
	for i := numBits - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		gmpDoublingStep(a, b, t1, t2)
		if (n>>uint(i))&1 == 1 {
			gmpAdditionStep(a, b, t1)
		}
		reporter(float64(numBits-i) / float64(numBits))
	}

	p := new(gmp.Int).SetUint64(uint64(opts.Modulus))
	return a.Mod(a, p).Uint64(), nil
}
