package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adamwoolhether/sitefx/effects"
)

func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "Print the stylesheet injected by the effects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), effects.Stylesheet())
			return err
		},
	}
}
