package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/tokencheck/internal/cli/render"
)

// NewHistoryCmd creates the history command
func NewHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent verification runs",
		Long:  `List verification runs recorded in .tokencheck/history.db, newest first.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			entries, err := app.ListHistory.Run(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), entries)
			}
			return render.NewHistoryRenderer(cmd.OutOrStdout()).Render(entries)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Number of runs to show")

	return cmd
}
