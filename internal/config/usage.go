package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/agbru/fibmod/internal/ui"
)

// setCustomUsage installs a colored usage function on fs.
func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		t := ui.GetCurrentTheme()
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			t = ui.NoColorTheme
		}

		out := fs.Output()

		fmt.Fprintf(out, "\n%sModular Fibonacci Calculator%s\n", t.Bold, t.Reset)
		fmt.Fprintf(out, "Computes F(n) mod P for any 64-bit n.\n\n")
		fmt.Fprintf(out, "%sUsage:%s\n  %s [flags]\n  echo N | %s [flags]\n\n%sFlags:%s\n",
			t.Warning, t.Reset, fs.Name(), fs.Name(), t.Warning, t.Reset)

		fs.VisitAll(func(f *flag.Flag) {
			name, usage := flag.UnquoteUsage(f)
			flagSig := fmt.Sprintf("-%s", f.Name)
			if len(name) > 0 {
				flagSig += " " + name
			}

			fmt.Fprintf(out, "  %s%-25s%s %s", t.Primary, flagSig, t.Reset, usage)
			if f.DefValue != "" && f.DefValue != "0" && f.DefValue != "false" {
				fmt.Fprintf(out, " %s(default %s)%s", t.Secondary, f.DefValue, t.Reset)
			}
			fmt.Fprintln(out)
		})

		fmt.Fprintf(out, "\n%sEnvironment:%s\n  Every flag can be set with %s<NAME>, e.g. %sN, %sALGO, %sMEMORY_LIMIT.\n\n",
			t.Warning, t.Reset, EnvPrefix, EnvPrefix, EnvPrefix, EnvPrefix)
	}
}
