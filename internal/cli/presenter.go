package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/fibmod/internal/errors"
	"github.com/agbru/fibmod/internal/fibonacci"
	"github.com/agbru/fibmod/internal/format"
	"github.com/agbru/fibmod/internal/orchestration"
	"github.com/agbru/fibmod/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// spinner and progress bar.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress delegates to DisplayProgress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan fibonacci.ProgressUpdate, numCalculators int, out io.Writer) {
	DisplayProgress(wg, progressChan, numCalculators, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter and
// orchestration.ErrorHandler for terminal output.
type CLIResultPresenter struct{}

var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

var tableHeaders = [...]string{"Algorithm", "Duration", "Status", "Value"}

// displayDuration formats d, showing sub-microsecond runs as "< 1µs".
func displayDuration(d time.Duration) string {
	if d < time.Microsecond {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// PresentComparisonTable renders one row per result. Column widths are
// measured on the plain text so escape codes do not skew alignment.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.CalculationResult, out io.Writer) {
	styles := ui.CurrentTableStyles()

	rows := make([][len(tableHeaders)]string, len(results))
	var widths [len(tableHeaders)]int
	for i, h := range tableHeaders {
		widths[i] = lipgloss.Width(h)
	}
	for i, res := range results {
		status, value := "Success", format.FormatUint(res.Result)
		if res.Err != nil {
			status, value = fmt.Sprintf("Failure (%v)", res.Err), "-"
		}
		rows[i] = [len(tableHeaders)]string{res.Name, displayDuration(res.Duration), status, value}
		for j, cell := range rows[i] {
			widths[j] = max(widths[j], lipgloss.Width(cell))
		}
	}

	render := func(style lipgloss.Style, col int, text string) string {
		return style.Width(widths[col] + 2).Render(text)
	}

	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")
	var line strings.Builder
	total := 0
	for i, h := range tableHeaders {
		line.WriteString(render(styles.Header, i, h))
		total += widths[i] + 2
	}
	fmt.Fprintln(out, strings.TrimRight(line.String(), " "))
	fmt.Fprintln(out, styles.Border.Render(strings.Repeat("─", total-2)))

	for i, res := range results {
		line.Reset()
		statusStyle := styles.Success
		if res.Err != nil {
			statusStyle = styles.Failure
		}
		line.WriteString(render(styles.Cell, 0, rows[i][0]))
		line.WriteString(render(styles.Cell, 1, rows[i][1]))
		line.WriteString(render(statusStyle, 2, rows[i][2]))
		line.WriteString(render(styles.Cell, 3, rows[i][3]))
		fmt.Fprintln(out, strings.TrimRight(line.String(), " "))
	}
}

// PresentResult renders the agreed result with DisplayResult.
func (CLIResultPresenter) PresentResult(result orchestration.CalculationResult, opts orchestration.PresentationOptions, out io.Writer) {
	DisplayResult(result, opts, out)
}

// HandleError reports err and returns its exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, CLIColorProvider{})
}

// CLIColorProvider implements apperrors.ColorProvider with the active theme.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }
