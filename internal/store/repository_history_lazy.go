package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/MKhiriev/zephyr-launch/internal/config"
	"github.com/MKhiriev/zephyr-launch/internal/logger"
	"github.com/MKhiriev/zephyr-launch/models"
)

// lazyHistoryRepository opens and migrates the sqlite journal on first use.
// Until something is recorded, no database file is created.
type lazyHistoryRepository struct {
	cfg    config.History
	logger *logger.Logger

	once sync.Once
	db   *DB
	repo HistoryRepository
	err  error
}

func newLazyHistoryRepository(cfg config.History, logger *logger.Logger) *lazyHistoryRepository {
	return &lazyHistoryRepository{cfg: cfg, logger: logger}
}

func (r *lazyHistoryRepository) open(ctx context.Context) (HistoryRepository, error) {
	r.once.Do(func() {
		db, err := NewConnectSQLite(ctx, r.cfg, r.logger)
		if err != nil {
			r.err = fmt.Errorf("%w: %w", ErrOpeningHistory, err)
			return
		}

		if err = db.Migrate(); err != nil {
			db.Close()
			r.err = fmt.Errorf("%w: %w", ErrOpeningHistory, err)
			return
		}

		r.db = db
		r.repo = NewHistoryRepository(db, r.logger)
	})

	return r.repo, r.err
}

func (r *lazyHistoryRepository) SavePatch(ctx context.Context, entry models.PatchHistoryEntry) error {
	repo, err := r.open(ctx)
	if err != nil {
		return err
	}
	return repo.SavePatch(ctx, entry)
}

// ListPatches reports an empty journal without creating it when the database
// file does not exist yet.
func (r *lazyHistoryRepository) ListPatches(ctx context.Context, filePath string, limit uint64) ([]models.PatchHistoryEntry, error) {
	if r.db == nil && r.cfg.DSN != memoryDSN {
		if _, err := os.Stat(r.cfg.DSN); errors.Is(err, fs.ErrNotExist) {
			return []models.PatchHistoryEntry{}, nil
		}
	}

	repo, err := r.open(ctx)
	if err != nil {
		return nil, err
	}
	return repo.ListPatches(ctx, filePath, limit)
}

func (r *lazyHistoryRepository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}
