package cli

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	apperrors "github.com/agbru/fibmod/internal/errors"
	"github.com/agbru/fibmod/internal/fibonacci"
)

func TestReadIndex(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  uint64
	}{
		{"10\n", 10},
		{"1000000000000000000\n", 1000000000000000000},
		{"18446744073709551615", 18446744073709551615},
		{"  50  \r\n", 50},
		{"7\nignored\n", 7},
	}
	for _, tc := range tests {
		got, err := ReadIndex(strings.NewReader(tc.input))
		if err != nil {
			t.Errorf("ReadIndex(%q): %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ReadIndex(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestReadIndex_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		cause error
	}{
		{"", nil},
		{"-5\n", fibonacci.ErrNegativeIndex},
		{"18446744073709551616\n", strconv.ErrRange},
		{"abc\n", nil},
	}
	for _, tc := range tests {
		_, err := ReadIndex(strings.NewReader(tc.input))
		var valErr apperrors.ValidationError
		if !errors.As(err, &valErr) {
			t.Errorf("ReadIndex(%q) error %v is not a ValidationError", tc.input, err)
			continue
		}
		if tc.cause != nil && !errors.Is(err, tc.cause) {
			t.Errorf("ReadIndex(%q) error %v does not wrap %v", tc.input, err, tc.cause)
		}
	}
}
