// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/zephyr-launch/models"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertPatchQuery(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	entry := models.PatchHistoryEntry{
		ID:                 "id-1",
		FilePath:           "/ws/.vscode/launch.json",
		ConfigurationIndex: 0,
		PreviousExecutable: "old.elf",
		NewExecutable:      "/ws/build/zephyr/zephyr.elf",
		WorkingDir:         "/ws",
		PatchedAt:          now,
	}

	query, args, err := buildInsertPatchQuery(entry)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into patch_history")
	for _, c := range patchHistoryColumns {
		require.Contains(t, q, c)
	}

	// sqlite placeholders, never postgres-style
	require.Equal(t, len(patchHistoryColumns), strings.Count(query, "?"))
	require.NotContains(t, query, "$1")

	require.Equal(t, []any{
		"id-1",
		"/ws/.vscode/launch.json",
		0,
		"old.elf",
		"/ws/build/zephyr/zephyr.elf",
		"/ws",
		now,
	}, args)
}

func Test_buildSelectPatchesQuery(t *testing.T) {
	tests := []struct {
		name         string
		filePath     string
		limit        uint64
		wantArgs     []any
		wantWhere    bool
		wantLimitStr string
	}{
		{
			name:     "all files, no limit",
			wantArgs: nil,
		},
		{
			name:      "one file",
			filePath:  "/ws/.vscode/launch.json",
			wantArgs:  []any{"/ws/.vscode/launch.json"},
			wantWhere: true,
		},
		{
			name:         "one file with limit",
			filePath:     "/ws/.vscode/launch.json",
			limit:        5,
			wantArgs:     []any{"/ws/.vscode/launch.json"},
			wantWhere:    true,
			wantLimitStr: "limit 5",
		},
		{
			name:         "limit only",
			limit:        10,
			wantLimitStr: "limit 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectPatchesQuery(tt.filePath, tt.limit)
			require.NoError(t, err)

			q := strings.ToLower(query)
			require.Contains(t, q, "from patch_history")
			require.Contains(t, q, "order by patched_at desc")

			if tt.wantWhere {
				require.Contains(t, q, "where file_path = ?")
			} else {
				require.NotContains(t, q, "where")
			}

			if tt.wantLimitStr != "" {
				require.Contains(t, q, tt.wantLimitStr)
			} else {
				require.NotContains(t, q, "limit")
			}

			if tt.wantArgs == nil {
				require.Empty(t, args)
			} else {
				require.Equal(t, tt.wantArgs, args)
			}
		})
	}
}
