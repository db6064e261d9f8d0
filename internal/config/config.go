// Package config provides the configuration management for the fibmod
// application. It defines the configuration structure, parses command-line
// flags, applies FIBMOD_* environment overrides and validates the result.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/agbru/fibmod/internal/errors"
	"github.com/agbru/fibmod/internal/fibonacci"
	"github.com/agbru/fibmod/internal/fibonacci/memory"
)

const (
	// EnvPrefix is the prefix for all environment variables read by fibmod.
	EnvPrefix = "FIBMOD_"
)

// Default configuration values.
const (
	// DefaultAlgo selects the O(log n) matrix calculator.
	DefaultAlgo = "matrix"
	// DefaultModulus is 10^9 + 7.
	DefaultModulus = uint64(fibonacci.DefaultModulus)
	// DefaultTimeout is the time limit for one run.
	DefaultTimeout = time.Second
	// DefaultLogLevel keeps debug and info lines out of normal output.
	DefaultLogLevel = "warn"
	// AlgoAll runs every registered calculator and compares the results.
	AlgoAll = "all"
)

// ErrInvalidConfig is returned by ParseConfig when validation fails. The
// underlying ConfigError or ValidationError is joined to it.
var ErrInvalidConfig = errors.New("invalid configuration")

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// N is the Fibonacci index. It is meaningful only when FromStdin is false.
	N uint64
	// FromStdin is set when neither -n nor FIBMOD_N was given; the index is
	// then read from the first line of standard input.
	FromStdin bool
	// Algo is "matrix", "table", "window", another registered name, or "all".
	Algo string
	// Modulus is the modulus results are reduced by.
	Modulus uint64
	// Timeout bounds the whole calculation.
	Timeout time.Duration
	// MemoryLimit is a human-readable byte budget such as "128MB" for
	// calculators whose memory grows with n. Empty means unlimited.
	MemoryLimit string
	// Quiet prints only the result value.
	Quiet bool
	// Details adds resource usage and a system snapshot to the report.
	Details bool
	// NoColor disables colored output. NO_COLOR is honored as well.
	NoColor bool
	// LogLevel is a zerolog level name.
	LogLevel string
}

// ToCalculationOptions converts the configuration into fibonacci.Options.
// It assumes Validate has accepted the configuration.
func (c AppConfig) ToCalculationOptions() fibonacci.Options {
	limit, _ := memory.ParseMemoryLimit(c.MemoryLimit)
	return fibonacci.Options{
		Modulus:     fibonacci.Modulus(c.Modulus),
		MemoryLimit: limit,
	}
}

// Validate checks the semantic consistency of the configuration. Every
// failure is an apperrors.ConfigError.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if err := fibonacci.Modulus(c.Modulus).Validate(); err != nil {
		return apperrors.NewConfigError("invalid modulus: %v", err)
	}
	if _, err := memory.ParseMemoryLimit(c.MemoryLimit); err != nil {
		return apperrors.NewConfigError("invalid memory limit: %v", err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("unknown log level: '%s'", c.LogLevel)
	}

	isAlgoAvailable := false
	for _, a := range availableAlgos {
		if a == c.Algo {
			isAlgoAvailable = true
			break
		}
	}
	if c.Algo != AlgoAll && !isAlgoAvailable {
		return apperrors.NewConfigError("unrecognized algorithm: '%s'. Valid algorithms are: 'all' or [%s]", c.Algo, strings.Join(availableAlgos, ", "))
	}
	return nil
}

// ParseConfig parses args (without the program name) into an AppConfig.
// Parsing errors and usage are written to errorWriter. A help request
// returns flag.ErrHelp; validation failures return an error wrapping both
// ErrInvalidConfig and the underlying apperrors value.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	algoHelp := fmt.Sprintf("Algorithm to use: '%s' (default), '%s' to compare, or one of [%s].",
		DefaultAlgo, AlgoAll, strings.Join(availableAlgos, ", "))

	config := AppConfig{}
	var nText string
	fs.StringVar(&nText, "n", "", "Index n of the Fibonacci number (read from stdin when omitted).")
	fs.StringVar(&config.Algo, "algo", DefaultAlgo, algoHelp)
	fs.Uint64Var(&config.Modulus, "mod", DefaultModulus, "Modulus P the result is reduced by (at least 2).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for the calculation.")
	fs.StringVar(&config.MemoryLimit, "memory-limit", "", "Memory budget for O(n)-memory algorithms, e.g. 128MB (empty = unlimited).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - print only the result.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Details, "details", false, "Display resource usage and a system snapshot.")
	fs.BoolVar(&config.Details, "d", false, "Alias for -details.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: trace, debug, info, warn, error or disabled.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	if isFlagSet(fs, "n") {
		n, err := ParseIndex(nText)
		if err != nil {
			fmt.Fprintln(errorWriter, "Configuration error:", err)
			return AppConfig{}, errors.Join(ErrInvalidConfig, err)
		}
		config.N = n
	} else {
		config.FromStdin = true
	}

	if err := applyEnvOverrides(&config, fs); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		return AppConfig{}, errors.Join(ErrInvalidConfig, err)
	}

	config.Algo = strings.ToLower(config.Algo)
	config.LogLevel = strings.ToLower(config.LogLevel)
	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.Join(ErrInvalidConfig, err)
	}
	return config, nil
}
