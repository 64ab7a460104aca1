package main

import (
	"os"

	"github.com/scrollfeed/scrollfeed/internal/cli"
	"github.com/scrollfeed/scrollfeed/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps errors to an exit code.
// Cobra already prints the error, so nothing is re-printed here.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
