// tasktree - Live task trees for the terminal
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/tasktree

package main

import (
	"os"

	"github.com/ariel-frischer/tasktree/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
