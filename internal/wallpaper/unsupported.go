//go:build !windows

package wallpaper

func newPlatformSetter(_ Preferences) (Setter, error) {
	return nil, ErrUnsupportedPlatform
}
