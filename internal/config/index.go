package config

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	apperrors "github.com/agbru/fibmod/internal/errors"
	"github.com/agbru/fibmod/internal/fibonacci"
)

// maxIndex is the largest accepted index, 2^64 - 1.
var maxIndex = new(big.Int).SetUint64(^uint64(0))

// ParseIndex parses a decimal Fibonacci index. Surrounding whitespace and a
// leading '+' are accepted. Negative values are rejected with a
// ValidationError wrapping fibonacci.ErrNegativeIndex; values above 2^64-1
// and malformed text are rejected with a ValidationError as well.
func ParseIndex(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, apperrors.ValidationError{Field: "n", Message: "index is empty"}
	}

	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64)
	if err == nil {
		return n, nil
	}

	// Tell "negative" and "too large" apart from plain garbage.
	v, ok := new(big.Int).SetString(s, 10)
	switch {
	case !ok:
		return 0, apperrors.ValidationError{Field: "n", Message: fmt.Sprintf("%q is not a decimal integer", s)}
	case v.Sign() < 0:
		return 0, apperrors.ValidationError{
			Field:   "n",
			Message: fmt.Sprintf("index must be non-negative, got %s", v),
			Cause:   fibonacci.ErrNegativeIndex,
		}
	case v.Cmp(maxIndex) > 0:
		return 0, apperrors.ValidationError{
			Field:   "n",
			Message: fmt.Sprintf("index %s exceeds the maximum %d", v, ^uint64(0)),
			Cause:   errors.Unwrap(err),
		}
	default:
		// "-0"
		return v.Uint64(), nil
	}
}
