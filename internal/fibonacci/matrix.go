package fibonacci

import "math/bits"

// Matrix is a 2x2 matrix of residues, stored row-major:
//
//	[ A B ]
//	[ C D ]
//
// It is a plain value: multiplying or raising it to a power never allocates,
// and no instance is shared between calls.
type Matrix struct{ A, B, C, D uint64 }

// Identity returns the multiplicative identity [[1,0],[0,1]].
func Identity() Matrix {
	return Matrix{A: 1, B: 0, C: 0, D: 1}
}

// Generator returns the Fibonacci generator matrix [[1,1],[1,0]]. Its k-th
// power is [[F(k+1), F(k)], [F(k), F(k-1)]].
func Generator() Matrix {
	return Matrix{A: 1, B: 1, C: 1, D: 0}
}

// Reduce returns m with every entry reduced into [0, p).
func (m Matrix) Reduce(p Modulus) Matrix {
	return Matrix{A: p.Reduce(m.A), B: p.Reduce(m.B), C: p.Reduce(m.C), D: p.Reduce(m.D)}
}

// Mul returns the product m·o with every entry reduced modulo p. Each of the
// eight scalar products is reduced before it is added, and the sum is reduced
// again, so entries of m and o must already lie in [0, p).
func (m Matrix) Mul(o Matrix, p Modulus) Matrix {
	return Matrix{
		A: p.add(p.mul(m.A, o.A), p.mul(m.B, o.C)),
		B: p.add(p.mul(m.A, o.B), p.mul(m.B, o.D)),
		C: p.add(p.mul(m.C, o.A), p.mul(m.D, o.C)),
		D: p.add(p.mul(m.C, o.B), p.mul(m.D, o.D)),
	}
}

// Pow returns m^e modulo p using exponentiation by squaring. Pow(0) is the
// identity. The loop performs bits.Len64(e) squarings and at most as many
// accumulating multiplications, with a constant number of live matrices.
func (m Matrix) Pow(e uint64, p Modulus) Matrix {
	r, _ := powMod(m, e, p, nil)
	return r
}

// stepFunc observes one iteration of powMod. bit is the index of the exponent
// bit about to be consumed and numBits the total. A non-nil error aborts the
// exponentiation.
type stepFunc func(bit, numBits int) error

// powMod is the square-and-multiply loop shared by Pow and the matrix
// calculator. Bits of e are read from least to most significant.
func powMod(m Matrix, e uint64, p Modulus, step stepFunc) (Matrix, error) {
	acc := Identity()
	base := m.Reduce(p)
	numBits := bits.Len64(e)

	for i := 0; e > 0; i++ {
		if step != nil {
			if err := step(i, numBits); err != nil {
				return Matrix{}, err
			}
		}
		if e&1 == 1 {
			acc = acc.Mul(base, p)
		}
		base = base.Mul(base, p)
		e >>= 1
	}
	return acc, nil
}
