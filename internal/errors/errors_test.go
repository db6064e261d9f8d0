// Package apperrors provides tests for application error types.
package apperrors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("modulus must be at least 2, got %d", 1),
			expected: "modulus must be at least 2, got 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			var configErr ConfigError
			if !errors.As(tt.err, &configErr) {
				t.Error("expected error to be ConfigError type")
			}
		})
	}
}

func TestCalculationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         CalculationError
		expectedMsg string
		checkIs     error
	}{
		{
			name:        "Error returns cause message without algorithm",
			err:         CalculationError{Cause: errors.New("division by zero")},
			expectedMsg: "division by zero",
		},
		{
			name:        "Error prefixes algorithm name",
			err:         CalculationError{Algorithm: "table", Cause: errors.New("boom")},
			expectedMsg: "table: boom",
		},
		{
			name:        "errors.Is works with wrapped error",
			err:         CalculationError{Cause: context.Canceled},
			expectedMsg: "context canceled",
			checkIs:     context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, tt.err.Error())
			}
			if tt.err.Unwrap() != tt.err.Cause {
				t.Error("Unwrap should return the original cause")
			}
			if tt.checkIs != nil && !errors.Is(tt.err, tt.checkIs) {
				t.Errorf("errors.Is should find %v", tt.checkIs)
			}
		})
	}
}

func TestTimeoutError(t *testing.T) {
	t.Parallel()
	err := TimeoutError{Operation: "window", Limit: time.Second}

	if got, want := err.Error(), `operation "window" timed out after 1s`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("TimeoutError should match context.DeadlineExceeded")
	}
	if !IsContextError(err) {
		t.Error("IsContextError should recognize TimeoutError")
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	sentinel := errors.New("negative index")
	err := ValidationError{Field: "n", Message: "must be non-negative, got -5", Cause: sentinel}

	if got, want := err.Error(), `validation error for "n": must be non-negative, got -5`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should find the sentinel cause")
	}

	wrapped := fmt.Errorf("reading input: %w", err)
	var valErr ValidationError
	if !errors.As(wrapped, &valErr) {
		t.Fatal("errors.As should find ValidationError through wrapping")
	}
	if valErr.Field != "n" {
		t.Errorf("expected field %q, got %q", "n", valErr.Field)
	}
}

func TestMemoryError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      MemoryError
		contains string
	}{
		{"with limit", MemoryError{Requested: 8_000_000_008, Limit: 128 << 20}, "(limit: 134217728)"},
		{"not addressable", MemoryError{Requested: 1 << 63}, "not addressable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("expected %q to contain %q", tt.err.Error(), tt.contains)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	base := MemoryError{Requested: 10, Limit: 5}
	err := WrapError(base, "table calculator n=%d", 1)
	if got, want := err.Error(), "table calculator n=1: memory limit exceeded: 10 bytes requested (limit: 5)"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	var memErr MemoryError
	if !errors.As(err, &memErr) {
		t.Error("wrapped error should still be a MemoryError")
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		want bool
	}{
		{context.Canceled, true},
		{context.DeadlineExceeded, true},
		{fmt.Errorf("wrapped: %w", context.Canceled), true},
		{errors.New("other"), false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsContextError(tt.err); got != tt.want {
			t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestHandleCalculationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{"nil error", nil, ExitSuccess, ""},
		{"deadline", context.DeadlineExceeded, ExitErrorTimeout, "Time Limit Exceeded"},
		{"timeout type", TimeoutError{Operation: "window", Limit: time.Second}, ExitErrorTimeout, "Time Limit Exceeded"},
		{"canceled", context.Canceled, ExitErrorCanceled, "Canceled"},
		{"memory", CalculationError{Algorithm: "table", Cause: MemoryError{Requested: 10, Limit: 5}}, ExitErrorMemory, "Memory Limit Exceeded"},
		{"validation", ValidationError{Field: "n", Message: "bad"}, ExitErrorConfig, "Invalid Input"},
		{"generic", errors.New("boom"), ExitErrorGeneric, "unexpected error occurred: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			code := HandleCalculationError(tt.err, 0, &buf, nil)
			if code != tt.wantCode {
				t.Errorf("expected exit code %d, got %d", tt.wantCode, code)
			}
			if !strings.Contains(buf.String(), tt.wantOut) {
				t.Errorf("expected output to contain %q, got %q", tt.wantOut, buf.String())
			}
		})
	}
}

func TestHandleCalculationError_DurationSuffix(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	HandleCalculationError(context.DeadlineExceeded, 1500*time.Millisecond, &buf, DefaultColorProvider{})
	if !strings.Contains(buf.String(), "after 1.5s") {
		t.Errorf("expected duration suffix, got %q", buf.String())
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	codes := map[string]int{
		"ExitSuccess":       ExitSuccess,
		"ExitErrorGeneric":  ExitErrorGeneric,
		"ExitErrorTimeout":  ExitErrorTimeout,
		"ExitErrorMismatch": ExitErrorMismatch,
		"ExitErrorConfig":   ExitErrorConfig,
		"ExitErrorMemory":   ExitErrorMemory,
		"ExitErrorCanceled": ExitErrorCanceled,
	}
	seen := make(map[int]string)
	for name, code := range codes {
		if other, dup := seen[code]; dup {
			t.Errorf("%s and %s share exit code %d", name, other, code)
		}
		seen[code] = name
	}
	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess must be 0, got %d", ExitSuccess)
	}
}
