package apod

import (
	"log/slog"
	"os"

	exif "github.com/dsoprea/go-exif/v3"
)

// interestingTags are the EXIF tags worth surfacing for an astronomy photo.
// APOD images shot on real cameras often carry exposure details; most PNGs
// carry nothing, and that is fine.
var interestingTags = map[string]bool{
	"Make":             true,
	"Model":            true,
	"DateTimeOriginal": true,
	"ExposureTime":     true,
	"FNumber":          true,
	"ISOSpeedRatings":  true,
	"FocalLength":      true,
	"Software":         true,
	"Artist":           true,
	"Copyright":        true,
	"ImageDescription": true,
}

// LogImageMetadata reads EXIF metadata from the image at path and logs a
// debug line per interesting tag. It is strictly best-effort observability:
// every failure mode, including an image with no EXIF at all, is a debug
// message and never an error.
func LogImageMetadata(path string, logger *slog.Logger) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is our own storage dir
	if err != nil {
		logger.Debug("image metadata unavailable", "path", path, "error", err)
		return
	}

	rawExif, err := exif.SearchAndExtractExif(data)
	if err != nil || rawExif == nil {
		logger.Debug("image carries no EXIF metadata", "path", path)
		return
	}

	entries, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		logger.Debug("failed to parse EXIF metadata", "path", path, "error", err)
		return
	}

	for _, entry := range entries {
		if interestingTags[entry.TagName] {
			logger.Debug("image metadata", "tag", entry.TagName, "value", entry.Formatted)
		}
	}
}
