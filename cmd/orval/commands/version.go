package commands

import (
	"github.com/spf13/cobra"

	"github.com/froggy1014/orval"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			Writef(cmd.OutOrStdout(), "orval %s\n", orval.BuildInfo())
		},
	}
}
