package store

import (
	"github.com/MKhiriev/zephyr-launch/internal/config"
	"github.com/MKhiriev/zephyr-launch/internal/logger"
)

// Storages groups the persistence components used by the service layer.
type Storages struct {
	// LaunchFile reads and writes launch configuration documents.
	LaunchFile LaunchFileStorage
	// History is the patch journal. It is a no-op when the journal is
	// disabled.
	History HistoryRepository

	history *lazyHistoryRepository
}

// NewStorages initialises the storage layer:
//  1. a filesystem [LaunchFileStorage];
//  2. unless cfg.Disabled, a [HistoryRepository] over the sqlite file cfg.DSN.
//     The database is opened, created, and migrated on first use, so a broken
//     journal surfaces as an error from that call only.
//
// cfg.DSN must already be resolved against the working directory.
func NewStorages(cfg config.History, logger *logger.Logger) *Storages {
	logger.Debug().Bool("history_disabled", cfg.Disabled).Msg("creating new storages...")

	storages := &Storages{
		LaunchFile: NewLaunchFileStorage(logger),
		History:    nopHistoryRepository{},
	}

	if cfg.Disabled {
		return storages
	}

	storages.history = newLazyHistoryRepository(cfg, logger)
	storages.History = storages.history

	return storages
}

// Close releases the history database connection, if one was opened.
func (s *Storages) Close() error {
	if s.history == nil {
		return nil
	}
	return s.history.Close()
}
