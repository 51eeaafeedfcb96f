package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/zephyr-launch/internal/logger"
	"github.com/MKhiriev/zephyr-launch/models"
)

// historyRepository is the sqlite-backed implementation of
// [HistoryRepository] over the "patch_history" table.
type historyRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewHistoryRepository constructs a [HistoryRepository] backed by db.
func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	logger.Debug().Msg("creating history repository")
	return &historyRepository{
		db:     db,
		logger: logger,
	}
}

// SavePatch inserts one journal entry.
func (r *historyRepository) SavePatch(ctx context.Context, entry models.PatchHistoryEntry) error {
	log := r.logger.Ctx(ctx)

	query, args, err := buildInsertPatchQuery(entry)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.SavePatch").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*historyRepository.SavePatch").
			Str("id", entry.ID).
			Str("file_path", entry.FilePath).
			Msg("error inserting patch history entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListPatches returns journal entries newest first, optionally restricted to
// one launch file and limited in count.
func (r *historyRepository) ListPatches(ctx context.Context, filePath string, limit uint64) ([]models.PatchHistoryEntry, error) {
	log := r.logger.Ctx(ctx)

	query, args, err := buildSelectPatchesQuery(filePath, limit)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.ListPatches").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.ListPatches").Msg("error querying patch history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.PatchHistoryEntry, 0)
	for rows.Next() {
		var e models.PatchHistoryEntry
		if err = rows.Scan(
			&e.ID,
			&e.FilePath,
			&e.ConfigurationIndex,
			&e.PreviousExecutable,
			&e.NewExecutable,
			&e.WorkingDir,
			&e.PatchedAt,
		); err != nil {
			log.Err(err).Str("func", "*historyRepository.ListPatches").Msg("error scanning patch history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*historyRepository.ListPatches").Msg("error iterating patch history rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// nopHistoryRepository is used when the journal is disabled.
type nopHistoryRepository struct{}

func (nopHistoryRepository) SavePatch(context.Context, models.PatchHistoryEntry) error {
	return nil
}

func (nopHistoryRepository) ListPatches(context.Context, string, uint64) ([]models.PatchHistoryEntry, error) {
	return []models.PatchHistoryEntry{}, nil
}
