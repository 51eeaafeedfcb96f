package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidLaunchConfigs indicates unusable launch file settings
	// (for example, a negative configuration index or an absolute suffix).
	ErrInvalidLaunchConfigs = errors.New("invalid launch configuration")
	// ErrInvalidWestConfigs indicates unusable west settings
	// (for example, an unknown Kconfig target).
	ErrInvalidWestConfigs = errors.New("invalid west configuration")
)
