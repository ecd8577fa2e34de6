package commands

import (
	"github.com/spf13/cobra"

	"github.com/froggy1014/orval"
)

// NewRootCommand builds the orval command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "orval",
		Short: "Synthesize client operation records from OpenAPI documents",
		Long: `orval turns every operation of an OpenAPI 3.x document into verb options:
the naming, parameter, body, response and hook information a client emitter
needs to render one request function.

Configuration is read from an orval.yaml file. Operations can be filtered by
tag, overridden per tag or operationId, split per request content type, and
rewritten by registered transformers.`,
		Version:       orval.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newVerbsCommand())
	root.AddCommand(newMCPCommand())
	root.AddCommand(newVersionCommand())
	return root
}
