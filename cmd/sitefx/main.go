// Command sitefx validates and renders the sitefx page configuration.
package main

import (
	"fmt"
	"os"

	"github.com/adamwoolhether/sitefx/internal/cmd"
)

// Set via ldflags, e.g. -ldflags="-X main.version=1.0.0".
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, buildDate)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
