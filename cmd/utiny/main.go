// utiny - TINY syntax tree printer
//
// Parses programs in the extended TINY teaching language and prints their
// syntax trees.
package main

import (
	"os"

	"github.com/kolkov/utiny/cmd/utiny/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
