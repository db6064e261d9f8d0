package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/agbru/fibmod/internal/cli"
	"github.com/agbru/fibmod/internal/config"
	apperrors "github.com/agbru/fibmod/internal/errors"
	"github.com/agbru/fibmod/internal/fibonacci"
	"github.com/agbru/fibmod/internal/logging"
	"github.com/agbru/fibmod/internal/metrics"
	"github.com/agbru/fibmod/internal/orchestration"
	"github.com/agbru/fibmod/internal/ui"
)

// Application is one configured fibmod run.
type Application struct {
	Config    config.AppConfig
	Factory   fibonacci.CalculatorFactory
	In        io.Reader
	ErrWriter io.Writer
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets the calculator factory. The default is
// fibonacci.GlobalFactory, which includes build-tagged calculators.
func WithFactory(f fibonacci.CalculatorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithInput sets the reader the index is read from when -n is absent.
// The default is os.Stdin.
func WithInput(r io.Reader) AppOption {
	return func(a *Application) { a.In = r }
}

// New parses args (args[0] is the program name) into an Application.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	app.setDefaults()

	programName := "fibmod"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, app.ErrWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

func (a *Application) setDefaults() {
	if a.Factory == nil {
		a.Factory = fibonacci.GlobalFactory()
	}
	if a.In == nil {
		a.In = os.Stdin
	}
	if a.ErrWriter == nil {
		a.ErrWriter = os.Stderr
	}
	if a.Logger == nil {
		a.Logger = logging.NewLogger(a.ErrWriter, "app")
	}
}

// Run executes the configured calculation and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	a.setDefaults()
	zerolog.SetGlobalLevel(logging.ParseLevel(a.Config.LogLevel))
	ui.InitTheme(a.Config.NoColor)

	if a.Config.FromStdin {
		n, err := cli.ReadIndex(a.In)
		if err != nil {
			return apperrors.HandleCalculationError(err, 0, a.ErrWriter, cli.CLIColorProvider{})
		}
		a.Config.N = n
		// stdin mode answers with the bare value only.
		a.Config.Quiet = true
	}

	calculators := orchestration.GetCalculatorsToRun(a.Config.Algo, a.Factory)
	if len(calculators) == 0 {
		fmt.Fprintf(a.ErrWriter, "no calculator available for algorithm %q\n", a.Config.Algo)
		return apperrors.ExitErrorConfig
	}

	a.Logger.Debug("starting run",
		logging.Uint64("n", a.Config.N),
		logging.Uint64("modulus", a.Config.Modulus),
		logging.String("algo", a.Config.Algo),
		logging.Int("calculators", len(calculators)))

	ctx, lifecycle := SetupLifecycle(ctx, a.Config.Timeout)
	defer lifecycle.Cleanup()

	if a.Config.Quiet {
		return a.runQuiet(ctx, calculators, out)
	}
	return a.runReport(ctx, calculators, out)
}

// runQuiet prints only the agreed value. Failures go to ErrWriter.
func (a *Application) runQuiet(ctx context.Context, calculators []fibonacci.Calculator, out io.Writer) int {
	results := orchestration.ExecuteCalculationsWithObservers(ctx, calculators, a.Config.N,
		a.Config.ToCalculationOptions(), orchestration.NullProgressReporter{}, io.Discard, a.progressObservers()...)
	a.annotateTimeouts(results)

	best := orchestration.FindBestResult(results)
	if best == nil {
		err := orchestration.FirstError(results)
		return apperrors.HandleCalculationError(err, 0, a.ErrWriter, cli.CLIColorProvider{})
	}
	for _, res := range results {
		if res.Err == nil && res.Result != best.Result {
			fmt.Fprintf(a.ErrWriter, "result mismatch: %s returned %d, %s returned %d\n",
				best.Name, best.Result, res.Name, res.Result)
			return apperrors.ExitErrorMismatch
		}
	}
	if err := cli.DisplayQuietResult(out, best.Result); err != nil {
		a.Logger.Error("writing result", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runReport prints the configuration, a progress bar, the comparison table
// and the result, plus resource figures with -details.
func (a *Application) runReport(ctx context.Context, calculators []fibonacci.Calculator, out io.Writer) int {
	before := metrics.NewMemoryCollector().Snapshot()

	cli.PrintExecutionConfig(a.Config, out)
	cli.PrintExecutionMode(calculators, out)

	results := orchestration.ExecuteCalculationsWithObservers(ctx, calculators, a.Config.N,
		a.Config.ToCalculationOptions(), cli.CLIProgressReporter{}, out, a.progressObservers()...)
	a.annotateTimeouts(results)

	presOpts := orchestration.PresentationOptions{
		N:       a.Config.N,
		Modulus: a.Config.Modulus,
		Details: a.Config.Details,
	}
	presenter := cli.CLIResultPresenter{}
	exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, presenter, presenter, out)

	if a.Config.Details {
		cli.DisplayDetails(cli.CollectResourceReport(before), out)
	}
	return exitCode
}

// annotateTimeouts replaces bare deadline errors with a TimeoutError naming
// the calculator and the configured limit.
func (a *Application) annotateTimeouts(results []orchestration.CalculationResult) {
	for i := range results {
		if errors.Is(results[i].Err, context.DeadlineExceeded) {
			results[i].Err = apperrors.TimeoutError{Operation: results[i].Name, Limit: a.Config.Timeout}
		}
	}
}

// progressObservers returns the observers attached to every calculation in
// addition to the progress display: the Prometheus progress gauge, and a
// throttled log of progress at debug level.
func (a *Application) progressObservers() []fibonacci.ProgressObserver {
	observers := []fibonacci.ProgressObserver{fibonacci.NewMetricsObserver()}
	if logging.ParseLevel(a.Config.LogLevel) <= zerolog.DebugLevel {
		logger := logging.NewLogger(a.ErrWriter, "progress").Zerolog()
		observers = append(observers, fibonacci.NewLoggingObserver(logger, 0))
	}
	return observers
}

// IsHelpError reports whether err is a -h/-help request.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCodeForError maps an error returned by New to an exit code: 0 for a
// help request and ExitErrorConfig for any other parsing or validation
// failure.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return apperrors.ExitSuccess
	case IsHelpError(err):
		return apperrors.ExitSuccess
	default:
		return apperrors.ExitErrorConfig
	}
}
