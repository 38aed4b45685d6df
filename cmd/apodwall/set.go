package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/apodwall/apodwall/internal/config"
	"github.com/apodwall/apodwall/internal/log"
	"github.com/apodwall/apodwall/internal/model"
	"github.com/apodwall/apodwall/internal/pipeline"
	"github.com/apodwall/apodwall/internal/wallpaper"
)

// newSetter builds the platform wallpaper setter. A variable so tests can
// substitute a wallpaper.Recorder on platforms without an implementation.
var newSetter = func(prefs wallpaper.Preferences) (wallpaper.Setter, error) {
	return wallpaper.New(prefs)
}

// NewSetCmd creates the set command.
func NewSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Fetch today's APOD image and set it as the desktop background",
		Long: `Set runs the full update: fetch the APOD page, locate the first image
link, download the image, and apply it as the desktop background.

The image is saved to a fixed file under the per-user data directory and
overwritten on every successful run. Execution log goes to the console and
to a size-bounded rotating log file next to the image.

Examples:
  # Update the wallpaper
  apodwall set

  # Update with debug-level console output
  apodwall set --verbose

  # Use a custom configuration file
  apodwall set -c myconfig.yaml

Configuration file (.apodwall) example:
  siteURL: http://apod.nasa.gov/apod/
  fetchTimeout: 10s
  wallpaperStyle: "6"
  log:
    maxSizeBytes: 1048576
    backupCount: 5`,
		Args: cobra.NoArgs,
		RunE: runSetCmd,
	}

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .apodwall in current or home directory)")

	return cmd
}

// runSetCmd executes the set command.
func runSetCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// The storage directory must exist before the log file can open and
	// before the image can be saved. Failure here is fatal.
	if err := os.MkdirAll(cfg.StorageDir, 0750); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", cfg.StorageDir, err)
	}

	logFile, err := log.NewRotatingWriter(cfg.LogPath(), cfg.LogMaxSize, cfg.LogBackupCount)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger := log.New(os.Stderr, logFile, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runSet(ctx, cfg, logger)
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// If the user explicitly specified a config file path, error if not
	// found. Otherwise a missing file just means defaults.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := file.Apply(cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// runSet executes the wallpaper update pipeline.
func runSet(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting wallpaper update", "siteURL", cfg.SiteURL)

	setter, err := newSetter(wallpaper.Preferences{
		Style: cfg.WallpaperStyle,
		Tile:  cfg.TileWallpaper,
	})
	if err != nil {
		logger.Error("wallpaper setter unavailable", "error", err)
		return err
	}

	p := pipeline.Default(cfg, setter, logger)
	run := model.NewRun(cfg.SiteURL)

	if err := p.Execute(ctx, run); err != nil {
		logger.Error("wallpaper update failed", "error", err)
		return err
	}

	logger.Info("wallpaper update completed",
		"imagePath", run.ImagePath,
		"elapsed", run.Elapsed().Round(time.Millisecond),
	)
	return nil
}
