package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/tokencheck/internal/cli/render"
	"github.com/trebuchet-org/tokencheck/internal/usecase"
)

// NewResolveCmd creates the resolve command
func NewResolveCmd() *cobra.Command {
	var connect bool

	cmd := &cobra.Command{
		Use:   "resolve [environment]",
		Short: "Resolve an environment descriptor",
		Long: `Resolve a named environment and print its descriptor. Resolution checks
that required credentials are present but does not contact the endpoint
unless --connect is given.

Examples:
  tokencheck resolve development
  tokencheck resolve rinkeby --connect`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ResolveEnvironmentParams{Connect: connect}
			if len(args) > 0 {
				params.Name = args[0]
			}

			result, err := app.ResolveEnvironment.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewResolveRenderer(cmd.OutOrStdout())
			if app.Config.JSON {
				return renderer.RenderJSON(result)
			}
			return renderer.Render(result)
		},
	}

	cmd.Flags().BoolVar(&connect, "connect", false, "Open a connection and check the network id")

	return cmd
}
