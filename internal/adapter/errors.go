package adapter

import "errors"

var (
	ErrWestNotFound         = errors.New("west executable not found")
	ErrWestFailed           = errors.New("west command failed")
	ErrClipboardUnsupported = errors.New("clipboard is not supported on this system")
)
