package main

import (
	"errors"
	"fmt"
	"os"

	"discern/cmd/discern/commands"
	"discern/internal/cli"
)

func main() {
	if err := commands.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var uerr *cli.UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, "Run 'discern --help' for usage.")
		}
		os.Exit(cli.ExitCode(err))
	}
}
