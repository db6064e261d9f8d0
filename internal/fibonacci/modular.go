package fibonacci

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrInvalidModulus is returned when a modulus cannot hold any residue other
// than zero.
var ErrInvalidModulus = errors.New("modulus must be at least 2")

// Modulus is the integer P under which every result is reduced. All residues
// handled by this package lie in [0, P).
//
// Any P >= 2 that fits in 64 bits is supported. Products of two residues are
// computed in 64-bit arithmetic when P <= 2^32, and widened to 128 bits with
// math/bits otherwise, so no intermediate value can overflow.
type Modulus uint64

// Validate reports whether p is usable as a modulus.
func (p Modulus) Validate() error {
	if p < 2 {
		return fmt.Errorf("%w, got %d", ErrInvalidModulus, uint64(p))
	}
	return nil
}

// Reduce maps x into [0, p).
func (p Modulus) Reduce(x uint64) uint64 {
	return x % uint64(p)
}

// mul returns a*b mod p for a, b in [0, p).
func (p Modulus) mul(a, b uint64) uint64 {
	if p <= narrowModulusLimit {
		return a * b % uint64(p)
	}
	// a, b < p implies hi < p, which bits.Div64 requires.
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, uint64(p))
	return rem
}

// add returns a+b mod p for a, b in [0, p).
func (p Modulus) add(a, b uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 || s >= uint64(p) {
		s -= uint64(p)
	}
	return s
}
