package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/tokencheck/internal/cli/render"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "networks",
		Aliases: []string{"envs"},
		Short:   "List configured deployment environments",
		Long: `List the built-in environments together with any [networks] defined in
tokencheck.toml. Each environment is resolved without connecting, so missing
credentials are reported but no endpoint is contacted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListEnvironments.Run(cmd.Context())
			if err != nil {
				return err
			}

			color := isatty.IsTerminal(os.Stdout.Fd())
			renderer := render.NewNetworksRenderer(cmd.OutOrStdout(), color)
			if app.Config.JSON {
				return renderer.RenderJSON(result)
			}
			return renderer.RenderNetworksList(result)
		},
	}

	return cmd
}
