// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders launchpatch output for the terminal with lipgloss.
package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/zephyr-launch/models"
)

const (
	// NoHistoryMessage is printed instead of an empty table.
	NoHistoryMessage = "No patches recorded yet."

	historyTimeLayout = "2006-01-02 15:04:05"
	maxPathWidth      = 48
)

var historyHeaders = []string{"WHEN", "FILE", "#", "PREVIOUS", "NEW"}

// RenderHistory renders journal entries as a table, newest first as given.
// Times are shown in loc; a nil loc means local time.
func RenderHistory(entries []models.PatchHistoryEntry, loc *time.Location) string {
	if len(entries) == 0 {
		return NoHistoryMessage
	}
	if loc == nil {
		loc = time.Local
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.PatchedAt.In(loc).Format(historyTimeLayout),
			fitText(e.FilePath, maxPathWidth),
			strconv.Itoa(e.ConfigurationIndex),
			fitText(valueOrDash(e.PreviousExecutable), maxPathWidth),
			fitText(e.NewExecutable, maxPathWidth),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(historyHeaders...).
		Rows(rows...)

	return t.String()
}
