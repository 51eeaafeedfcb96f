package service

import "errors"

var (
	// ErrNoConfigurations is returned when the launch document has no
	// "configurations" array or the array is empty.
	ErrNoConfigurations = errors.New("launch file has no configurations")
	// ErrConfigurationIndexOutOfRange is returned when the requested index
	// is past the end of "configurations".
	ErrConfigurationIndexOutOfRange = errors.New("configuration index out of range")
	// ErrInvalidConfigurationEntry is returned when the addressed entry is
	// not a JSON object.
	ErrInvalidConfigurationEntry = errors.New("configuration entry is not an object")
	// ErrWorkingDirUnavailable is returned when the working directory cannot
	// be resolved.
	ErrWorkingDirUnavailable = errors.New("working directory unavailable")

	ErrNoBoardProvided         = errors.New("no board name provided")
	ErrUnsupportedConfigTarget = errors.New("unsupported config target")
)
