package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/zephyr-launch/internal/app"
	"github.com/MKhiriev/zephyr-launch/internal/tui"
)

const defaultHistoryLimit = 20

// NewHistoryCmd returns the history command, which prints the patch journal
// as a table.
func NewHistoryCmd(state *rootState) *cobra.Command {
	var (
		limit uint64
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently applied patches",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			return withApp(state, cc, func(a *app.App) error {
				entries, err := a.History(cc.Context(), limit, all)
				if err != nil {
					return err
				}

				fmt.Fprintln(cc.OutOrStdout(), tui.RenderHistory(entries, nil))
				return nil
			})
		},
	}

	cmd.Flags().Uint64VarP(&limit, "limit", "n", defaultHistoryLimit, "Maximum number of entries, 0 for all")
	cmd.Flags().BoolVar(&all, "all", false, "Include every launch file, not only the configured one")

	return cmd
}
