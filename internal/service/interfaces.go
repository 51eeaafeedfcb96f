package service

import (
	"context"

	"github.com/MKhiriev/zephyr-launch/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SettingsPatcher rewrites the executable path of a launch configuration.
type SettingsPatcher interface {
	// Patch loads the launch file, sets
	// configurations[req.ConfigurationIndex].executable to
	// WorkingDir joined with ExecutableSuffix, and writes the file back.
	// Nothing is written when loading or addressing the entry fails.
	Patch(ctx context.Context, req models.PatchRequest) (models.PatchResult, error)
}

// HistoryService reads the patch journal.
type HistoryService interface {
	List(ctx context.Context, filePath string, limit uint64) ([]models.PatchHistoryEntry, error)
}

// WestService drives the Zephyr west meta-tool.
type WestService interface {
	// BuildArgs returns the west arguments for req without running anything.
	BuildArgs(req models.BuildRequest) ([]string, error)
	Build(ctx context.Context, dir string, req models.BuildRequest) error
	Flash(ctx context.Context, dir string) error
}
