package apod

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Downloader streams a remote image to a local file.
//
// Unlike the page fetch, the download has no explicit timeout: images can be
// tens of megabytes and the process has nowhere else to be. Cancellation
// still works through the request context.
type Downloader struct {
	// client is the HTTP client used for the download.
	client *http.Client

	// userAgent is the User-Agent header sent with the request.
	userAgent string
}

// DownloaderOption configures a Downloader.
type DownloaderOption func(*Downloader)

// WithDownloaderUserAgent sets a custom User-Agent header.
func WithDownloaderUserAgent(ua string) DownloaderOption {
	return func(d *Downloader) {
		d.userAgent = ua
	}
}

// WithDownloaderClient replaces the HTTP client. Intended for tests.
func WithDownloaderClient(client *http.Client) DownloaderOption {
	return func(d *Downloader) {
		d.client = client
	}
}

// NewDownloader creates a Downloader.
func NewDownloader(opts ...DownloaderOption) *Downloader {
	d := &Downloader{
		client:    &http.Client{},
		userAgent: "apodwall/1.0",
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Download retrieves imageURL and writes the bytes to destPath, overwriting
// any previous file. No checksum or content-type verification is performed;
// whatever the server sends is what gets saved.
func (d *Downloader) Download(ctx context.Context, imageURL, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", imageURL, err)
	}
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", imageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %s downloading %s", resp.Status, imageURL)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", destPath, err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close() //nolint:errcheck // Best effort cleanup; the copy error matters more
		return fmt.Errorf("failed to save %s: %w", destPath, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", destPath, err)
	}

	return nil
}
