package wallpaper

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// ErrUnsupportedPlatform is returned by New on operating systems without a
// wallpaper implementation.
var ErrUnsupportedPlatform = errors.New("setting the wallpaper is not supported on this platform")

// Preferences are the per-user display settings persisted before the
// wallpaper is applied.
type Preferences struct {
	// Style is the WallpaperStyle registry code. "6" fits the image to the
	// screen while preserving aspect ratio.
	Style string

	// Tile is the TileWallpaper registry code. "0" disables tiling.
	Tile string
}

// Setter applies an existing local image file as the desktop background.
type Setter interface {
	// Apply persists the display preferences and sets imagePath as the
	// wallpaper, both immediately and across reboots. Either operation
	// failing fails the whole call; no rollback of already-written
	// preferences is attempted.
	Apply(ctx context.Context, imagePath string) error
}

// New returns the Setter for the current operating system.
// On platforms without an implementation it returns ErrUnsupportedPlatform.
func New(prefs Preferences) (Setter, error) {
	return newPlatformSetter(prefs)
}

// checkImageExists verifies the wallpaper file is actually there before any
// system state is touched. A missing file would otherwise surface as an
// opaque platform error after the preferences were already written.
func checkImageExists(imagePath string) error {
	if _, err := os.Stat(imagePath); err != nil {
		return fmt.Errorf("wallpaper file not usable: %w", err)
	}
	return nil
}
