package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestFieldHelpers(t *testing.T) {
	tests := []struct {
		name    string
		field   Field
		wantKey string
		wantVal any
	}{
		{"String", String("algo", "matrix"), "algo", "matrix"},
		{"Int", Int("calculators", 2), "calculators", 2},
		{"Uint64", Uint64("n", 1_000_000_000_000_000_000), "n", uint64(1_000_000_000_000_000_000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.wantKey)
			}
			if tt.field.Value != tt.wantVal {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.wantVal)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.WarnLevel},
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"loud", zerolog.WarnLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestNewLogger tests the component-tagged logger constructor.
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "app")

	logger.Info("starting run", Uint64("n", 10), String("algo", "window"), Int("calculators", 1))
	output := buf.String()

	for _, want := range []string{`"component":"app"`, "starting run", `"n":10`, `"algo":"window"`, `"calculators":1`} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %s, got: %s", want, output)
		}
	}
}

func TestZerologAdapter_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))

	logger.Debug("dbg", Uint64("modulus", 1_000_000_007))
	logger.Error("failed", errors.New("memory limit exceeded"), Field{Key: "ok", Value: false})

	output := buf.String()
	for _, want := range []string{`"level":"debug"`, `"modulus":1000000007`, `"level":"error"`, "memory limit exceeded", `"ok":false`} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %s, got: %s", want, output)
		}
	}
}

func TestZerologAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.WarnLevel))

	logger.Info("hidden")
	logger.Debug("hidden too")
	if buf.Len() != 0 {
		t.Errorf("expected no output below warn level, got: %s", buf.String())
	}
}

func TestZerologAdapter_Zerolog(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewLogger(&buf, "x")
	zl := adapter.Zerolog()
	zl.Warn().Msg("direct")
	if !strings.Contains(buf.String(), "direct") {
		t.Errorf("underlying logger not shared, got: %s", buf.String())
	}
}

func TestStdLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStdLoggerAdapter(log.New(&buf, "", 0), false)

	logger.Info("plain")
	logger.Info("golden file written", Int("entries", 8), String("path", "out.json"))
	logger.Error("failed", errors.New("boom"))
	logger.Debug("generated", Uint64("n", 10))

	output := buf.String()
	for _, want := range []string{"[INFO] plain\n", "[INFO] golden file written entries=8 path=out.json", "[ERROR] failed: boom"} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
	if strings.Contains(output, "[DEBUG]") {
		t.Errorf("debug line written without verbose, got: %s", output)
	}
}

func TestStdLoggerAdapter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStdLoggerAdapter(log.New(&buf, "", 0), true)

	logger.Debug("generated", Uint64("n", 10), Uint64("modulus", 10000))
	if got, want := buf.String(), "[DEBUG] generated n=10 modulus=10000\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestLoggerInterfaceCompliance(t *testing.T) {
	var _ Logger = (*ZerologAdapter)(nil)
	var _ Logger = (*StdLoggerAdapter)(nil)
	if NewDefaultLogger(zerolog.InfoLevel) == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}
