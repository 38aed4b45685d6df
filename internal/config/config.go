package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These mirror the behavior of the scheduled-task deployment this tool is
// designed for: one fetch per day, one image file, one bounded log.
const (
	// DefaultSiteURL is the APOD page to scrape. Plain HTTP is intentional;
	// the site serves the same markup over both schemes and the original
	// deployment predates the HTTPS redirect.
	DefaultSiteURL = "http://apod.nasa.gov/apod/"

	// DefaultFetchTimeout bounds the page fetch. The APOD page is small, so
	// 10 seconds is generous; anything slower indicates a network problem
	// that a scheduled task should give up on rather than hang.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultWallpaperFileName is the fixed image file name under the storage
	// directory. Each run overwrites it; there is no history.
	DefaultWallpaperFileName = "apod.png"

	// DefaultLogFileName is the active log file name under the logs
	// subdirectory of the storage directory.
	DefaultLogFileName = "apodwall.log"

	// DefaultLogMaxSize is the size threshold that triggers log rotation.
	DefaultLogMaxSize = 1 * 1024 * 1024 // 1MiB

	// DefaultLogBackupCount bounds how many rotated log files are kept.
	DefaultLogBackupCount = 5

	// DefaultWallpaperStyle is the Windows registry code for "fit to screen"
	// (scale preserving aspect ratio, no cropping).
	DefaultWallpaperStyle = "6"

	// DefaultTileWallpaper disables wallpaper tiling.
	DefaultTileWallpaper = "0"

	// DefaultMaxBodySize limits how much of the page response is read.
	// The APOD page is a few tens of KB; 5MB leaves ample headroom while
	// preventing memory exhaustion from unexpected responses.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// DefaultUserAgent identifies apodwall in HTTP requests.
	DefaultUserAgent = "apodwall/1.0 (+https://github.com/apodwall/apodwall)"

	// AppName is the application name used for XDG directory paths.
	AppName = "apodwall"
)

// Config holds all configuration options for apodwall.
// It is populated from CLI flags and the optional config file, then passed
// through the application via dependency injection rather than global state.
type Config struct {
	// SiteURL is the APOD page URL to fetch. It also serves as the base URL
	// for resolving relative image links found on the page.
	SiteURL string

	// FetchTimeout is the timeout for the page fetch request.
	// The image download deliberately has no timeout: images can be large
	// and a scheduled task can afford to wait.
	FetchTimeout time.Duration

	// WallpaperFileName is the file name the downloaded image is saved under
	// inside StorageDir. Overwritten on every successful run.
	WallpaperFileName string

	// LogMaxSize is the size in bytes beyond which the active log file is
	// rotated into a numbered backup.
	LogMaxSize int64

	// LogBackupCount is the number of rotated log files to retain.
	// Older backups beyond this count are discarded.
	LogBackupCount int

	// WallpaperStyle is the registry value written to WallpaperStyle.
	// "6" means fit to screen.
	WallpaperStyle string

	// TileWallpaper is the registry value written to TileWallpaper.
	// "0" disables tiling.
	TileWallpaper string

	// MaxBodySize is the maximum page response size in bytes to read.
	MaxBodySize int64

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string

	// StorageDir is the per-user directory holding the image file and the
	// logs subdirectory. Defaults to the XDG data directory for apodwall.
	StorageDir string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .apodwall in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// Verbose enables debug-level console output. The file log always
	// records debug-level detail regardless of this flag.
	Verbose bool
}

// NewConfig creates a new Config with default values.
// Many defaults are non-zero, so relying on zero values is not an option;
// this constructor also documents what the defaults are.
func NewConfig() *Config {
	return &Config{
		SiteURL:           DefaultSiteURL,
		FetchTimeout:      DefaultFetchTimeout,
		WallpaperFileName: DefaultWallpaperFileName,
		LogMaxSize:        DefaultLogMaxSize,
		LogBackupCount:    DefaultLogBackupCount,
		WallpaperStyle:    DefaultWallpaperStyle,
		TileWallpaper:     DefaultTileWallpaper,
		MaxBodySize:       DefaultMaxBodySize,
		UserAgent:         DefaultUserAgent,
		StorageDir:        XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for apodwall.
// On Linux: ~/.local/share/apodwall
// On macOS: ~/Library/Application Support/apodwall
// On Windows: %LOCALAPPDATA%\apodwall
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// WallpaperPath returns the fixed path the downloaded image is written to.
func (c *Config) WallpaperPath() string {
	return filepath.Join(c.StorageDir, c.WallpaperFileName)
}

// LogDir returns the directory holding the rotating log file.
func (c *Config) LogDir() string {
	return filepath.Join(c.StorageDir, "logs")
}

// LogPath returns the path of the active log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.LogDir(), DefaultLogFileName)
}

// Validate checks if the configuration is valid.
// It is called once after CLI parsing and config file loading, before any
// network or filesystem work begins, and returns the first problem found.
func (c *Config) Validate() error {
	if c.SiteURL == "" {
		return ErrEmptySiteURL
	}

	if c.FetchTimeout <= 0 {
		return ErrInvalidFetchTimeout
	}

	if c.WallpaperFileName == "" {
		return ErrEmptyWallpaperFileName
	}

	if c.LogMaxSize <= 0 {
		return ErrInvalidLogMaxSize
	}

	if c.LogBackupCount < 0 {
		return ErrInvalidLogBackupCount
	}

	if c.MaxBodySize <= 0 {
		return ErrInvalidMaxBodySize
	}

	return nil
}
