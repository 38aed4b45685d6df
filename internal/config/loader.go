package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".apodwall"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .apodwall configuration file.
// All fields are optional; absent fields keep their defaults.
type File struct {
	// SiteURL overrides the APOD page URL to fetch.
	SiteURL string `yaml:"siteURL,omitempty"`

	// FetchTimeout overrides the page fetch timeout.
	// Go duration string, e.g. "10s" or "1m".
	FetchTimeout string `yaml:"fetchTimeout,omitempty"`

	// WallpaperFileName overrides the saved image file name.
	WallpaperFileName string `yaml:"wallpaperFileName,omitempty"`

	// WallpaperStyle overrides the display style registry code.
	WallpaperStyle string `yaml:"wallpaperStyle,omitempty"`

	// TileWallpaper overrides the tiling registry code.
	TileWallpaper string `yaml:"tileWallpaper,omitempty"`

	// Log holds log rotation overrides.
	Log LogFile `yaml:"log,omitempty"`
}

// LogFile holds the log rotation section of the configuration file.
type LogFile struct {
	// MaxSizeBytes overrides the rotation threshold in bytes.
	MaxSizeBytes int64 `yaml:"maxSizeBytes,omitempty"`

	// BackupCount overrides the number of rotated files to retain.
	// Use -1 in the file to mean zero backups; yaml zero means "not set".
	BackupCount int `yaml:"backupCount,omitempty"`
}

// LoadConfigFile loads overrides from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers decide
// whether that is fatal based on whether the path was explicitly specified.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .apodwall in the current directory
// 3. Look for .apodwall in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}

// Apply copies the file's non-empty overrides onto the config.
func (f *File) Apply(c *Config) error {
	if f.SiteURL != "" {
		c.SiteURL = f.SiteURL
	}

	if f.FetchTimeout != "" {
		d, err := time.ParseDuration(f.FetchTimeout)
		if err != nil {
			return fmt.Errorf("invalid fetchTimeout %q: %w", f.FetchTimeout, err)
		}
		c.FetchTimeout = d
	}

	if f.WallpaperFileName != "" {
		c.WallpaperFileName = f.WallpaperFileName
	}

	if f.WallpaperStyle != "" {
		c.WallpaperStyle = f.WallpaperStyle
	}

	if f.TileWallpaper != "" {
		c.TileWallpaper = f.TileWallpaper
	}

	if f.Log.MaxSizeBytes != 0 {
		c.LogMaxSize = f.Log.MaxSizeBytes
	}

	switch {
	case f.Log.BackupCount < 0:
		c.LogBackupCount = 0
	case f.Log.BackupCount > 0:
		c.LogBackupCount = f.Log.BackupCount
	}

	return nil
}
