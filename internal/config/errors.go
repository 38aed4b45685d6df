package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration. Package-level
// sentinel errors allow callers to use errors.Is() while still carrying a
// human-readable message.
var (
	// ErrEmptySiteURL is returned when no APOD page URL is configured.
	ErrEmptySiteURL = errors.New("empty site URL: a source page URL is required")

	// ErrInvalidFetchTimeout is returned when the fetch timeout is not positive.
	// A zero or negative timeout would cause immediate request failures.
	ErrInvalidFetchTimeout = errors.New("invalid fetch timeout: must be positive")

	// ErrEmptyWallpaperFileName is returned when the wallpaper file name is empty.
	// Without a file name there is nowhere to save the downloaded image.
	ErrEmptyWallpaperFileName = errors.New("empty wallpaper file name")

	// ErrInvalidLogMaxSize is returned when the log rotation threshold is not
	// positive. A zero threshold would rotate on every write.
	ErrInvalidLogMaxSize = errors.New("invalid log max size: must be positive")

	// ErrInvalidLogBackupCount is returned when the backup count is negative.
	// Zero is valid and means rotated logs are discarded immediately.
	ErrInvalidLogBackupCount = errors.New("invalid log backup count: must be non-negative")

	// ErrInvalidMaxBodySize is returned when the max body size is not positive.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be positive")
)
