package fibonacci

import (
	"errors"
	"fmt"

	apperrors "github.com/agbru/fibmod/internal/errors"
)

// ErrNegativeIndex is the cause attached to the ValidationError returned for
// a negative Fibonacci index.
var ErrNegativeIndex = errors.New("fibonacci index must be non-negative")

// Mod returns F(n) mod DefaultModulus, with F(0) = 0 and F(1) = 1.
//
// It runs in O(log n) time and O(1) memory, is free of side effects and is
// safe for concurrent use.
func Mod(n uint64) uint64 {
	return ModWith(n, DefaultModulus)
}

// ModWith returns F(n) mod p. It panics if p fails Validate.
//
// For n >= 2 the result is the top-left entry of G^(n-1), where G is the
// generator matrix.
func ModWith(n uint64, p Modulus) uint64 {
	if p < 2 {
		panic("fibonacci: " + ErrInvalidModulus.Error())
	}
	if n < 2 {
		return n
	}
	return Generator().Pow(n-1, p).A
}

// ModSigned is ModWith for callers holding a signed index. A negative n is
// rejected with a ValidationError wrapping ErrNegativeIndex instead of being
// reinterpreted as a huge unsigned exponent.
func ModSigned(n int64, p Modulus) (uint64, error) {
	if n < 0 {
		return 0, apperrors.ValidationError{
			Field:   "n",
			Message: fmt.Sprintf("index must be non-negative, got %d", n),
			Cause:   ErrNegativeIndex,
		}
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return ModWith(uint64(n), p), nil
}
