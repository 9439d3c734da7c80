package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var extended bool

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			fmt.Fprintf(w, "sitefx %s\n", versionInfo.Version)
			if extended {
				fmt.Fprintf(w, "Commit: %s\n", versionInfo.Commit)
				fmt.Fprintf(w, "Built: %s\n", versionInfo.BuildDate)
				fmt.Fprintf(w, "Go: %s\n", runtime.Version())
			}
			return nil
		},
	}

	versionCmd.Flags().BoolVarP(&extended, "extended", "e", false, "show extended version information")

	return versionCmd
}
