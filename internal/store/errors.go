package store

import "errors"

// Sentinel errors returned by the launch file storage. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrLaunchFileNotFound is returned when the launch configuration file
	// does not exist.
	ErrLaunchFileNotFound = errors.New("launch file not found")

	// ErrReadingLaunchFile is returned when the file exists but cannot be
	// opened or read.
	ErrReadingLaunchFile = errors.New("error reading launch file")

	// ErrDecodingLaunchFile is returned when the file content is not a
	// single valid JSON object.
	ErrDecodingLaunchFile = errors.New("error decoding launch file")

	// ErrEncodingLaunchFile is returned when the in-memory document cannot
	// be serialized. The file on disk is left untouched in that case.
	ErrEncodingLaunchFile = errors.New("error encoding launch file")

	// ErrWritingLaunchFile is returned when opening the file for writing or
	// writing the encoded document fails.
	ErrWritingLaunchFile = errors.New("error writing launch file")
)

// ErrOpeningHistory is returned when the history database cannot be opened,
// created, or migrated.
var ErrOpeningHistory = errors.New("error opening patch history")

// Low-level database operation errors returned (wrapped) by the history
// repository.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan patch history rows")
)
