package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/zephyr-launch/internal/logger"
	"github.com/MKhiriev/zephyr-launch/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHistoryRepo(t *testing.T) (*historyRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &historyRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func testEntry(id string, at time.Time) models.PatchHistoryEntry {
	return models.PatchHistoryEntry{
		ID:                 id,
		FilePath:           "/ws/.vscode/launch.json",
		PreviousExecutable: "old.elf",
		NewExecutable:      "/ws/build/zephyr/zephyr.elf",
		WorkingDir:         "/ws",
		PatchedAt:          at,
	}
}

var historyColumns = []string{
	"id", "file_path", "configuration_index", "previous_executable",
	"new_executable", "working_dir", "patched_at",
}

func TestSavePatch_Success(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	entry := testEntry("id-1", time.Now())

	mock.ExpectExec("INSERT INTO patch_history").
		WithArgs(entry.ID, entry.FilePath, entry.ConfigurationIndex, entry.PreviousExecutable,
			entry.NewExecutable, entry.WorkingDir, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SavePatch(context.Background(), entry)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSavePatch_ExecError(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO patch_history").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.SavePatch(context.Background(), testEntry("id-1", time.Now()))

	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListPatches_AllFiles(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	newer := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)

	rows := sqlmock.NewRows(historyColumns).
		AddRow("id-2", "/ws/.vscode/launch.json", 0, "old.elf", "/ws/build/zephyr/zephyr.elf", "/ws", newer).
		AddRow("id-1", "/other/.vscode/launch.json", 1, "", "/other/build/zephyr/zephyr.elf", "/other", older)

	mock.ExpectQuery("SELECT (.+) FROM patch_history ORDER BY patched_at DESC").
		WillReturnRows(rows)

	got, err := repo.ListPatches(context.Background(), "", 0)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "id-2", got[0].ID)
	assert.Equal(t, newer, got[0].PatchedAt)
	assert.Equal(t, "id-1", got[1].ID)
	assert.Equal(t, 1, got[1].ConfigurationIndex)
	assert.Empty(t, got[1].PreviousExecutable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListPatches_FilteredAndLimited(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(historyColumns).
		AddRow("id-3", "/ws/.vscode/launch.json", 0, "a", "b", "/ws", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM patch_history WHERE file_path = \\? ORDER BY (.+) LIMIT 1").
		WithArgs("/ws/.vscode/launch.json").
		WillReturnRows(rows)

	got, err := repo.ListPatches(context.Background(), "/ws/.vscode/launch.json", 1)

	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListPatches_Empty(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM patch_history").
		WillReturnRows(sqlmock.NewRows(historyColumns))

	got, err := repo.ListPatches(context.Background(), "", 0)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListPatches_QueryError(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM patch_history").
		WillReturnError(errors.New("no such table: patch_history"))

	_, err := repo.ListPatches(context.Background(), "", 0)

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListPatches_ScanError(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(historyColumns).
		AddRow("id-1", "/ws/.vscode/launch.json", "not-a-number", "a", "b", "/ws", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM patch_history").
		WillReturnRows(rows)

	_, err := repo.ListPatches(context.Background(), "", 0)

	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestListPatches_RowError(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(historyColumns).
		AddRow("id-1", "/ws/.vscode/launch.json", 0, "a", "b", "/ws", time.Now()).
		RowError(0, errors.New("corrupt page"))

	mock.ExpectQuery("SELECT (.+) FROM patch_history").
		WillReturnRows(rows)

	_, err := repo.ListPatches(context.Background(), "", 0)

	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestNopHistoryRepository(t *testing.T) {
	var repo HistoryRepository = nopHistoryRepository{}

	require.NoError(t, repo.SavePatch(context.Background(), testEntry("x", time.Now())))

	got, err := repo.ListPatches(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}
