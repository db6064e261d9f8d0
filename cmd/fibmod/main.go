// Command fibmod prints F(n) mod P. Without -n it reads n from the first
// line of standard input and prints only the value.
package main

import (
	"context"
	"os"

	"github.com/agbru/fibmod/internal/app"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		os.Exit(app.ExitCodeForError(err))
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}
