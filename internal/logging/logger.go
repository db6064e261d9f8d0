// Package logging wraps zerolog behind the small structured Logger used by
// fibmod and its tools.
package logging

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the structured logger the CLI and the golden generator write
// diagnostics through. Diagnostics always go to stderr so stdout keeps the
// result framing.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Debug(msg string, fields ...Field)
}

// Field is a key-value pair attached to a log line.
type Field struct {
	Key   string
	Value any
}

// String creates a string field, such as the algorithm name.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an integer field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Uint64 creates a field for an index or a modulus.
func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: value}
}

// ParseLevel converts a level name ("debug", "info", "warn", "error",
// "disabled") into a zerolog level. Unknown or empty names fall back to
// zerolog.WarnLevel so that the stdout framing stays clean by default.
func ParseLevel(name string) zerolog.Level {
	if name == "" {
		return zerolog.WarnLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}

// ZerologAdapter writes Logger calls as zerolog JSON lines.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewDefaultLogger writes timestamped JSON lines at level and above to stderr.
func NewDefaultLogger(level zerolog.Level) *ZerologAdapter {
	return NewZerologAdapter(
		zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger(),
	)
}

// NewLogger writes to w and tags every line with a component name.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	return NewZerologAdapter(
		zerolog.New(w).With().Str("component", component).Timestamp().Logger(),
	)
}

// Zerolog exposes the wrapped zerolog.Logger for components that take one
// directly, such as the progress LoggingObserver.
func (z *ZerologAdapter) Zerolog() zerolog.Logger {
	return z.logger
}

func withFields(event *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case uint64:
			event = event.Uint64(f.Key, v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	return event
}

func (z *ZerologAdapter) Info(msg string, fields ...Field) {
	withFields(z.logger.Info(), fields).Msg(msg)
}

func (z *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	withFields(z.logger.Error().Err(err), fields).Msg(msg)
}

func (z *ZerologAdapter) Debug(msg string, fields ...Field) {
	withFields(z.logger.Debug(), fields).Msg(msg)
}

// StdLoggerAdapter writes Logger calls as plain "[LEVEL] msg key=value"
// lines through a standard log.Logger. Debug lines are dropped unless
// verbose is set.
type StdLoggerAdapter struct {
	logger  *stdlog.Logger
	verbose bool
}

// NewStdLoggerAdapter wraps logger. Debug output is enabled by verbose.
func NewStdLoggerAdapter(logger *stdlog.Logger, verbose bool) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: logger, verbose: verbose}
}

func (s *StdLoggerAdapter) line(level, msg string, fields []Field) {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(level)
	b.WriteString("] ")
	b.WriteString(msg)
	for _, f := range fields {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	s.logger.Print(b.String())
}

func (s *StdLoggerAdapter) Info(msg string, fields ...Field) {
	s.line("INFO", msg, fields)
}

func (s *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	s.line("ERROR", msg+": "+err.Error(), fields)
}

func (s *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	if s.verbose {
		s.line("DEBUG", msg, fields)
	}
}
