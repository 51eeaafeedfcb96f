package store

import (
	"context"

	"github.com/MKhiriev/zephyr-launch/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LaunchFileStorage reads and writes debugger launch configuration files.
type LaunchFileStorage interface {
	// Load reads the file at path and decodes it as a JSON object.
	Load(ctx context.Context, path string) (models.LaunchDocument, error)
	// Save overwrites the file at path with doc encoded as JSON indented by
	// indent spaces.
	Save(ctx context.Context, path string, doc models.LaunchDocument, indent int) error
}

// HistoryRepository is the journal of applied patches.
type HistoryRepository interface {
	SavePatch(ctx context.Context, entry models.PatchHistoryEntry) error
	// ListPatches returns entries newest first. An empty filePath matches
	// every file; a zero limit returns everything.
	ListPatches(ctx context.Context, filePath string, limit uint64) ([]models.PatchHistoryEntry, error)
}
