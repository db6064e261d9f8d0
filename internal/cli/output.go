// Package cli renders calculation progress and results on a terminal.
//
// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer] and
//     handle colorization. Examples: [DisplayResult], [DisplayProgress].
//
//   - Format* functions return a string without performing I/O.
//     Example: [FormatQuietResult].
//
//   - Read* functions parse input. Example: [ReadIndex].
package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/agbru/fibmod/internal/format"
	"github.com/agbru/fibmod/internal/metrics"
	"github.com/agbru/fibmod/internal/orchestration"
	"github.com/agbru/fibmod/internal/sysmon"
	"github.com/agbru/fibmod/internal/ui"
)

// FormatQuietResult returns the bare decimal value followed by a newline,
// the framing used for stdin mode and -quiet.
func FormatQuietResult(value uint64) string {
	return strconv.FormatUint(value, 10) + "\n"
}

// DisplayQuietResult writes FormatQuietResult(value) to out.
func DisplayQuietResult(out io.Writer, value uint64) error {
	_, err := io.WriteString(out, FormatQuietResult(value))
	return err
}

// DisplayResult prints "F(n) mod m = value". With opts.Details it also
// prints the algorithm and its calculation time.
func DisplayResult(result orchestration.CalculationResult, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprintf(out, "\n%sF(%s) mod %s%s = %s%s%s\n",
		ui.ColorBold(), format.FormatUint(opts.N), format.FormatUint(opts.Modulus), ui.ColorReset(),
		ui.ColorGreen(), strconv.FormatUint(result.Result, 10), ui.ColorReset())

	if !opts.Details {
		return
	}
	fmt.Fprintf(out, "\n%s--- Detailed result analysis ---%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "Algorithm        : %s%s%s\n", ui.ColorBlue(), result.Name, ui.ColorReset())
	fmt.Fprintf(out, "Calculation time : %s%s%s\n", ui.ColorGreen(), displayDuration(result.Duration), ui.ColorReset())
}

// ResourceReport gathers process and system figures for -details.
type ResourceReport struct {
	Usage metrics.ResourceUsage
	// UsageErr is set when getrusage is unavailable.
	UsageErr error
	// Allocated is the heap allocation since the run started.
	Allocated uint64
	System    sysmon.Stats
}

// CollectResourceReport reads the current resource usage. before is the
// memory snapshot taken when the run started.
func CollectResourceReport(before metrics.MemorySnapshot) ResourceReport {
	usage, err := metrics.ReadResourceUsage()
	after := metrics.NewMemoryCollector().Snapshot()
	return ResourceReport{
		Usage:     usage,
		UsageErr:  err,
		Allocated: after.AllocatedSince(before),
		System:    sysmon.Sample(),
	}
}

// DisplayDetails prints a ResourceReport.
func DisplayDetails(report ResourceReport, out io.Writer) {
	fmt.Fprintf(out, "\n%s--- Resource usage ---%s\n", ui.ColorBold(), ui.ColorReset())
	if report.UsageErr != nil {
		fmt.Fprintf(out, "Process usage    : %sunavailable (%v)%s\n", ui.ColorYellow(), report.UsageErr, ui.ColorReset())
	} else {
		fmt.Fprintf(out, "CPU time         : %s%s%s (user %s, system %s)\n",
			ui.ColorCyan(), displayDuration(report.Usage.CPUTime()), ui.ColorReset(),
			displayDuration(report.Usage.UserTime), displayDuration(report.Usage.SystemTime))
		fmt.Fprintf(out, "Peak RSS         : %s%s%s\n", ui.ColorCyan(), format.FormatBytes(report.Usage.MaxRSS), ui.ColorReset())
	}
	fmt.Fprintf(out, "Heap allocated   : %s%s%s\n", ui.ColorCyan(), format.FormatBytes(report.Allocated), ui.ColorReset())

	sys := report.System
	fmt.Fprintf(out, "\n%s--- System snapshot ---%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "Logical CPUs     : %d\n", sys.LogicalCPU)
	fmt.Fprintf(out, "CPU usage        : %.1f%%\n", sys.CPUPercent)
	fmt.Fprintf(out, "Memory usage     : %.1f%%\n", sys.MemPercent)
	fmt.Fprintf(out, "Load average (1m): %.2f\n", sys.Load1)
	if sys.ProcessRSS > 0 {
		fmt.Fprintf(out, "Process RSS      : %s\n", format.FormatBytes(sys.ProcessRSS))
	}
}
