package commands

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/zephyr-launch/internal/app"
)

// NewPatchCmd returns the patch command. It does the same as the bare root
// command.
func NewPatchCmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "patch",
		Short: "Set the launch configuration executable to <cwd>/build/zephyr/zephyr.elf",
		Args:  cobra.NoArgs,
		RunE:  runPatch(state),
	}
}

func runPatch(state *rootState) func(*cobra.Command, []string) error {
	return func(cc *cobra.Command, _ []string) error {
		return withApp(state, cc, func(a *app.App) error {
			_, err := a.Patch(cc.Context())
			return err
		})
	}
}
