package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/apodwall/apodwall/internal/apod"
	"github.com/apodwall/apodwall/internal/config"
	"github.com/apodwall/apodwall/internal/model"
	"github.com/apodwall/apodwall/internal/wallpaper"
)

// FetchStep retrieves the APOD page text into the run.
type FetchStep struct {
	fetcher *apod.Fetcher
	logger  *slog.Logger
}

// NewFetchStep creates a FetchStep using the given fetcher.
func NewFetchStep(fetcher *apod.Fetcher, logger *slog.Logger) *FetchStep {
	return &FetchStep{fetcher: fetcher, logger: logger}
}

// Name returns the step name.
func (s *FetchStep) Name() string {
	return "fetch_page"
}

// Do fetches the page and stores its decoded text on the run.
func (s *FetchStep) Do(ctx context.Context, run *model.Run) error {
	s.logger.Info("fetching page", "url", run.SiteURL)

	pageHTML, err := s.fetcher.FetchPage(ctx, run.SiteURL)
	if err != nil {
		s.logger.Error("failed to fetch page", "url", run.SiteURL, "error", err)
		return err
	}

	run.PageHTML = pageHTML
	s.logger.Debug("page fetched", "url", run.SiteURL, "bytes", len(pageHTML))
	return nil
}

// ExtractStep scans the fetched page for the image link.
type ExtractStep struct {
	extractor *apod.Extractor
	logger    *slog.Logger
}

// NewExtractStep creates an ExtractStep using the given extractor.
func NewExtractStep(extractor *apod.Extractor, logger *slog.Logger) *ExtractStep {
	return &ExtractStep{extractor: extractor, logger: logger}
}

// Name returns the step name.
func (s *ExtractStep) Name() string {
	return "extract_image_url"
}

// Do extracts the first qualifying image link and stores the resolved URL
// on the run. A page with no qualifying anchor is a warning here; the
// pipeline still treats it as terminal for the run.
func (s *ExtractStep) Do(_ context.Context, run *model.Run) error {
	imageURL, err := s.extractor.ExtractImageURL(run.PageHTML)
	if err != nil {
		if errors.Is(err, apod.ErrNoImageLink) {
			s.logger.Warn("no image link found in page", "url", run.SiteURL)
		} else {
			s.logger.Error("failed to extract image link", "url", run.SiteURL, "error", err)
		}
		return err
	}

	// Page text is only needed for extraction; let it go.
	run.PageHTML = ""
	run.ImageURL = imageURL
	s.logger.Info("image link extracted", "imageURL", imageURL)
	return nil
}

// DownloadStep saves the image behind the resolved URL to the fixed
// destination path.
type DownloadStep struct {
	downloader *apod.Downloader
	destPath   string
	logger     *slog.Logger
}

// NewDownloadStep creates a DownloadStep writing to destPath.
func NewDownloadStep(downloader *apod.Downloader, destPath string, logger *slog.Logger) *DownloadStep {
	return &DownloadStep{downloader: downloader, destPath: destPath, logger: logger}
}

// Name returns the step name.
func (s *DownloadStep) Name() string {
	return "download_image"
}

// Do downloads the image, overwriting any previous file at the destination.
func (s *DownloadStep) Do(ctx context.Context, run *model.Run) error {
	s.logger.Info("downloading image", "imageURL", run.ImageURL)

	if err := s.downloader.Download(ctx, run.ImageURL, s.destPath); err != nil {
		s.logger.Error("failed to download image",
			"imageURL", run.ImageURL,
			"path", s.destPath,
			"error", err,
		)
		return err
	}

	run.ImagePath = s.destPath
	s.logger.Info("image saved", "path", s.destPath)
	return nil
}

// MetadataStep logs EXIF metadata of the downloaded image at debug level.
// It never fails the run.
type MetadataStep struct {
	logger *slog.Logger
}

// NewMetadataStep creates a MetadataStep.
func NewMetadataStep(logger *slog.Logger) *MetadataStep {
	return &MetadataStep{logger: logger}
}

// Name returns the step name.
func (s *MetadataStep) Name() string {
	return "image_metadata"
}

// Do logs whatever metadata the image carries.
func (s *MetadataStep) Do(_ context.Context, run *model.Run) error {
	apod.LogImageMetadata(run.ImagePath, s.logger)
	return nil
}

// WallpaperStep applies the downloaded image as the desktop background.
type WallpaperStep struct {
	setter wallpaper.Setter
	logger *slog.Logger
}

// NewWallpaperStep creates a WallpaperStep using the given setter.
func NewWallpaperStep(setter wallpaper.Setter, logger *slog.Logger) *WallpaperStep {
	return &WallpaperStep{setter: setter, logger: logger}
}

// Name returns the step name.
func (s *WallpaperStep) Name() string {
	return "set_wallpaper"
}

// Do persists the display preferences and applies the wallpaper.
func (s *WallpaperStep) Do(ctx context.Context, run *model.Run) error {
	s.logger.Info("setting wallpaper", "path", run.ImagePath)

	if err := s.setter.Apply(ctx, run.ImagePath); err != nil {
		s.logger.Error("failed to set wallpaper", "path", run.ImagePath, "error", err)
		return err
	}

	s.logger.Info("wallpaper set successfully", "path", run.ImagePath)
	return nil
}

// Default builds the standard five-step pipeline from the configuration and
// a platform setter.
func Default(cfg *config.Config, setter wallpaper.Setter, logger *slog.Logger) *Pipeline {
	fetcher := apod.NewFetcher(
		apod.WithFetchTimeout(cfg.FetchTimeout),
		apod.WithFetcherUserAgent(cfg.UserAgent),
		apod.WithFetcherMaxBodySize(cfg.MaxBodySize),
	)
	extractor := apod.NewExtractor(cfg.SiteURL)
	downloader := apod.NewDownloader(
		apod.WithDownloaderUserAgent(cfg.UserAgent),
	)

	p := New(WithLogger(logger))
	p.AddSteps(
		NewFetchStep(fetcher, logger),
		NewExtractStep(extractor, logger),
		NewDownloadStep(downloader, cfg.WallpaperPath(), logger),
		NewMetadataStep(logger),
		NewWallpaperStep(setter, logger),
	)
	return p
}
