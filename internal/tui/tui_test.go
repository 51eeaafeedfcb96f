package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/zephyr-launch/models"
)

func TestRenderHistory_Empty(t *testing.T) {
	assert.Equal(t, NoHistoryMessage, RenderHistory(nil, time.UTC))
}

func TestRenderHistory_Rows(t *testing.T) {
	entries := []models.PatchHistoryEntry{
		{
			ID:                 "b",
			FilePath:           "/ws/.vscode/launch.json",
			ConfigurationIndex: 1,
			PreviousExecutable: "old.elf",
			NewExecutable:      "/ws/build/zephyr/zephyr.elf",
			PatchedAt:          time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:            "a",
			FilePath:      "/ws/.vscode/launch.json",
			NewExecutable: "/ws/build/zephyr/zephyr.elf",
			PatchedAt:     time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC),
		},
	}

	out := RenderHistory(entries, time.UTC)

	for _, h := range historyHeaders {
		assert.Contains(t, out, h)
	}
	assert.Contains(t, out, "2026-10-18 09:30:00")
	assert.Contains(t, out, "2026-10-17 08:00:00")
	assert.Contains(t, out, "old.elf")
	assert.Contains(t, out, "/ws/build/zephyr/zephyr.elf")
	assert.Less(t, strings.Index(out, "2026-10-18"), strings.Index(out, "2026-10-17"))
}

func TestFitText(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"/very/long/path/zephyr.elf", 13, "...zephyr.elf"},
		{"abcdef", 3, "def"},
		{"abc", 0, "abc"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fitText(tt.in, tt.max), tt.in)
	}
}

func TestRenderBuildInfo(t *testing.T) {
	out := RenderBuildInfo(models.NewAppBuildInfo("v1.2.0", "", "abc123"))

	assert.Contains(t, out, AppName)
	assert.Contains(t, out, "v1.2.0")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "abc123")
}
