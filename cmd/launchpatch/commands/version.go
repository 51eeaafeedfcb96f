package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/zephyr-launch/internal/tui"
	"github.com/MKhiriev/zephyr-launch/models"
)

// NewVersionCmd returns the version command.
func NewVersionCmd(info models.AppBuildInfo) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version of the launchpatch CLI",
		Args:  cobra.NoArgs,
		Run: func(cc *cobra.Command, _ []string) {
			if plain {
				fmt.Fprintln(cc.OutOrStdout(), info.String())
				return
			}
			fmt.Fprintln(cc.OutOrStdout(), tui.RenderBuildInfo(info))
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print plain text without decoration")

	return cmd
}
