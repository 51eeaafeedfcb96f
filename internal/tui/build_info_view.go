// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/zephyr-launch/models"
)

// AppName is shown in the version box.
const AppName = "launchpatch"

// RenderBuildInfo renders build metadata inside a rounded box.
func RenderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Version: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Date:    ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Commit:  ")
	b.WriteString(info.BuildCommit())

	return boxStyle.Render(renderPage(AppName, b.String()))
}
