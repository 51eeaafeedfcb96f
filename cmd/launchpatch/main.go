package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/zephyr-launch/cmd/launchpatch/commands"
	"github.com/MKhiriev/zephyr-launch/models"
)

// set with -ldflags "-X main.buildVersion=..."
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cmd := commands.NewRootCmd(info)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
