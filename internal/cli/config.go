package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/tokencheck/internal/cli/render"
	"github.com/trebuchet-org/tokencheck/internal/usecase"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change local config",
		Long: `Show the configuration tokencheck runs with: tokencheck.toml merged with
.tokencheck/config.local.json, TOKENCHECK_* variables and flags.

Secrets are only reported as set or not set. Explorer API keys are masked.

Available subcommands:
  config           Show current config
  config set       Set a local default
  config remove    Remove a local default`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd)
		},
	}

	cmd.AddCommand(NewConfigSetCmd())
	cmd.AddCommand(NewConfigRemoveCmd())

	return cmd
}

// NewConfigSetCmd creates the config set subcommand
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a local default",
		Long: `Set a value in .tokencheck/config.local.json.
Available keys: network (net), mode, call-timeout, rate-limit

Examples:
  tokencheck config set network rinkeby
  tokencheck config set mode fail-fast
  tokencheck config set call-timeout 30s`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.SetConfig.Run(cmd.Context(), usecase.SetConfigParams{
				Key:   args[0],
				Value: args[1],
			})
			if err != nil {
				return err
			}

			return render.NewConfigRenderer(cmd.OutOrStdout()).RenderSet(result)
		},
	}
}

// NewConfigRemoveCmd creates the config remove subcommand
func NewConfigRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <key>",
		Short: "Remove a local default",
		Long: `Remove a value from .tokencheck/config.local.json so the built-in
default applies again.

Examples:
  tokencheck config remove network
  tokencheck config remove call-timeout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.RemoveConfig.Run(cmd.Context(), usecase.RemoveConfigParams{
				Key: args[0],
			})
			if err != nil {
				return err
			}

			return render.NewConfigRenderer(cmd.OutOrStdout()).RenderRemove(result)
		},
	}
}

// showConfig displays the current configuration
func showConfig(cmd *cobra.Command) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.ShowConfig.Run(cmd.Context())
	if err != nil {
		return err
	}

	if app.Config.JSON {
		return render.RenderJSON(cmd.OutOrStdout(), result)
	}
	return render.NewConfigRenderer(cmd.OutOrStdout()).RenderConfig(result)
}
