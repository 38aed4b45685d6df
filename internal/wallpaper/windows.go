//go:build windows

package wallpaper

import (
	"context"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

// SystemParametersInfo constants, from winuser.h.
const (
	spiSetDeskWallpaper = 0x0014
	spifUpdateIniFile   = 0x01
	spifSendChange      = 0x02
)

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	procSystemParametersInfo = user32.NewProc("SystemParametersInfoW")
)

// desktopSetter is the Windows Setter. It writes the style preferences to
// the registry and applies the wallpaper through SystemParametersInfoW.
type desktopSetter struct {
	prefs Preferences
}

func newPlatformSetter(prefs Preferences) (Setter, error) {
	return &desktopSetter{prefs: prefs}, nil
}

// Apply persists the display preferences and sets the wallpaper.
func (s *desktopSetter) Apply(_ context.Context, imagePath string) error {
	if err := checkImageExists(imagePath); err != nil {
		return err
	}

	if err := s.writePreferences(); err != nil {
		return err
	}

	return s.setWallpaper(imagePath)
}

// writePreferences persists the style and tiling flags under the per-user
// desktop key. Explorer reads these when applying the wallpaper.
func (s *desktopSetter) writePreferences() error {
	key, err := registry.OpenKey(registry.CURRENT_USER, `Control Panel\Desktop`, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to open desktop preferences key: %w", err)
	}
	defer key.Close()

	if err := key.SetStringValue("WallpaperStyle", s.prefs.Style); err != nil {
		return fmt.Errorf("failed to set WallpaperStyle: %w", err)
	}

	if err := key.SetStringValue("TileWallpaper", s.prefs.Tile); err != nil {
		return fmt.Errorf("failed to set TileWallpaper: %w", err)
	}

	return nil
}

// setWallpaper asks the system to apply the file as the desktop background.
// SPIF_UPDATEINIFILE persists the change across reboots; SPIF_SENDCHANGE
// broadcasts it so the desktop repaints immediately.
func (s *desktopSetter) setWallpaper(imagePath string) error {
	pathPtr, err := windows.UTF16PtrFromString(imagePath)
	if err != nil {
		return fmt.Errorf("invalid wallpaper path %s: %w", imagePath, err)
	}

	ret, _, callErr := procSystemParametersInfo.Call(
		uintptr(spiSetDeskWallpaper),
		0,
		uintptr(unsafe.Pointer(pathPtr)),
		uintptr(spifUpdateIniFile|spifSendChange),
	)
	if ret == 0 {
		return fmt.Errorf("SystemParametersInfoW failed for %s: %w", imagePath, callErr)
	}

	return nil
}
