package commands

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/zephyr-launch/internal/app"
)

func NewFlashCmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "flash",
		Short: "Run west flash",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			return withApp(state, cc, func(a *app.App) error {
				return a.Flash(cc.Context())
			})
		},
	}
}
