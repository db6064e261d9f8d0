package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/fibmod/internal/config"
	"github.com/agbru/fibmod/internal/fibonacci"
	"github.com/agbru/fibmod/internal/format"
	"github.com/agbru/fibmod/internal/ui"
)

// PrintExecutionConfig displays the index, modulus, budgets and environment.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	memLimit := cfg.MemoryLimit
	if memLimit == "" {
		memLimit = "unlimited"
	}
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Calculating %sF(%s) mod %s%s with a timeout of %s%s%s and a memory limit of %s%s%s.\n",
		ui.ColorMagenta(), format.FormatUint(cfg.N), format.FormatUint(cfg.Modulus), ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset(),
		ui.ColorYellow(), memLimit, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

// PrintExecutionMode displays whether one algorithm or a comparison runs.
func PrintExecutionMode(calculators []fibonacci.Calculator, out io.Writer) {
	var modeDesc string
	if len(calculators) > 1 {
		modeDesc = "Parallel comparison of all algorithms"
	} else {
		modeDesc = fmt.Sprintf("Single calculation with the %s%s%s algorithm",
			ui.ColorGreen(), calculators[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
