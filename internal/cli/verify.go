package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/tokencheck/internal/cli/render"
	"github.com/trebuchet-org/tokencheck/internal/config"
	"github.com/trebuchet-org/tokencheck/internal/usecase"
)

// NewVerifyCmd creates the verify command
func NewVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [environment]",
		Short: "Verify the deployed token's metadata",
		Long: `Connect to an environment and compare the token's name(), symbol() and
decimals() with the expected values from the [token] table of tokencheck.toml,
or from a YAML file given with --expect-file.

In fail-fast mode the first divergence stops the run; in collect-all mode
every accessor is checked and all divergences are reported.

Examples:
  tokencheck verify
  tokencheck verify rinkeby --mode fail-fast
  tokencheck verify --address 0x5FbDB2315678afecb367f032d93F642f64180aa3
  tokencheck verify mainnet --expect-file checks.yaml --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.RunCheckParams{
				Address: app.Config.Address,
				Mode:    app.Config.Mode,
			}
			if len(args) > 0 {
				params.Network = args[0]
			}
			if app.Config.ExpectFile != "" {
				params.Expected, err = config.LoadExpectations(app.Config.ExpectFile)
				if err != nil {
					return err
				}
			}

			result, runErr := app.RunCheck.Run(cmd.Context(), params)
			if result == nil {
				return runErr
			}

			renderer := render.NewVerifyRenderer(cmd.OutOrStdout())
			if app.Config.JSON {
				err = renderer.RenderJSON(result)
			} else {
				err = renderer.Render(result)
			}
			if err != nil {
				return err
			}
			return runErr
		},
	}

	cmd.Flags().String("address", "", "Token address (overrides [deployments])")
	cmd.Flags().String("mode", "", "Verification mode: fail-fast or collect-all")
	cmd.Flags().String("expect-file", "", "YAML file with expected accessor values")
	cmd.Flags().String("metrics-file", "", "Write Prometheus metrics to this textfile")
	cmd.Flags().Duration("call-timeout", 0, "Per-call timeout (default 10s)")
	cmd.Flags().Bool("no-history", false, "Do not record this run")

	return cmd
}
