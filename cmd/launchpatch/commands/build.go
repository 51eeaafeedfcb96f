package commands

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/zephyr-launch/internal/app"
	"github.com/MKhiriev/zephyr-launch/models"
)

// NewBuildCmd returns the build command. Board, pristine, project, and
// target come from the persistent flags shared with the root command.
func NewBuildCmd(state *rootState) *cobra.Command {
	var patchAfter bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Run west build for the configured board",
		Example: `  launchpatch build -b sam_e54_xpro
  launchpatch build -b nrf52840dk/nrf52840 -p --project samples/basic/blinky --patch
  launchpatch build -b sam_e54_xpro -t menuconfig`,
		Args: cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			req := models.BuildRequest{
				Board:        state.cfg.West.Board,
				Pristine:     state.cfg.West.Pristine,
				ProjectPath:  state.cfg.West.ProjectPath,
				ConfigTarget: models.ConfigTarget(state.cfg.West.ConfigTarget),
			}

			return withApp(state, cc, func(a *app.App) error {
				return a.Build(cc.Context(), req, patchAfter)
			})
		},
	}

	cmd.Flags().BoolVar(&patchAfter, "patch", false, "Patch the launch file after a successful build")

	return cmd
}
