// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/zephyr-launch/models"
)

const patchHistoryTable = "patch_history"

var patchHistoryColumns = []string{
	"id",
	"file_path",
	"configuration_index",
	"previous_executable",
	"new_executable",
	"working_dir",
	"patched_at",
}

// sqlite uses ? placeholders
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertPatchQuery(entry models.PatchHistoryEntry) (string, []any, error) {
	return sqlite.
		Insert(patchHistoryTable).
		Columns(patchHistoryColumns...).
		Values(
			entry.ID,
			entry.FilePath,
			entry.ConfigurationIndex,
			entry.PreviousExecutable,
			entry.NewExecutable,
			entry.WorkingDir,
			entry.PatchedAt,
		).
		ToSql()
}

func buildSelectPatchesQuery(filePath string, limit uint64) (string, []any, error) {
	query := sqlite.
		Select(patchHistoryColumns...).
		From(patchHistoryTable).
		OrderBy("patched_at DESC", "id DESC")

	if filePath != "" {
		query = query.Where(sq.Eq{"file_path": filePath})
	}

	if limit > 0 {
		query = query.Limit(limit)
	}

	return query.ToSql()
}
