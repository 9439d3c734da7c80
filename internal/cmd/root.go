// Package cmd implements the sitefx command line.
package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

var versionInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

// SetVersionInfo is called by the main package with the values set at
// link time.
func SetVersionInfo(version, commit, buildDate string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.BuildDate = buildDate
}

type rootFlags struct {
	cfgFile string
	verbose bool
}

// NewRootCmd builds the sitefx command tree.
func NewRootCmd() *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:   "sitefx",
		Short: "Build-time tooling for the sitefx page effects",
		Long: `sitefx validates and renders the configuration consumed by the
sitefx WebAssembly module, and prints the stylesheet it injects.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.cfgFile, "config", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output (sets log level to debug)")

	rootCmd.AddCommand(
		newConfigCmd(&flags),
		newStylesCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
