package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mealmax/mealmax/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Domain failures are already rendered by the command's output
		// formatter; print everything else (flag errors, bad files).
		var exitErr *cli.ExitError
		rendered := errors.As(err, &exitErr) && exitErr.Code == cli.ExitFailure
		if !rendered {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
