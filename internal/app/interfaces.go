package app

import (
	"context"

	"github.com/MKhiriev/zephyr-launch/models"
)

// Runner is the set of operations exposed to the command line.
type Runner interface {
	// Patch points the configured launch file at the local build output and
	// prints [MsgLaunchFileUpdated].
	Patch(ctx context.Context) (models.PatchResult, error)
	// Build runs west build with req. When patchAfter is set a successful
	// build is followed by [Runner.Patch].
	Build(ctx context.Context, req models.BuildRequest, patchAfter bool) error
	// Flash runs west flash.
	Flash(ctx context.Context) error
	// History lists journal entries, newest first. Unless all is set only
	// entries of the configured launch file are returned.
	History(ctx context.Context, limit uint64, all bool) ([]models.PatchHistoryEntry, error)
	// Close releases resources held by the runtime.
	Close() error
}
