// Package wallpaper applies a local image file as the desktop background.
//
// The platform specifics sit behind the Setter interface so the pipeline
// stays platform-neutral and testable. The one real implementation targets
// Windows: it persists the display style and tiling preferences under
// HKCU\Control Panel\Desktop, then asks user32 to apply the file immediately
// and across reboots. Other platforms get ErrUnsupportedPlatform at
// construction time, and tests use the Recorder fake.
package wallpaper
