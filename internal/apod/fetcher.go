package apod

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
)

// Fetcher retrieves the APOD page as decoded text.
//
// The fetch is a single HTTP GET with a fixed timeout and no retries: this
// runs as a scheduled daily task, and a failed day simply tries again
// tomorrow. Redirects are whatever the transport does by default.
type Fetcher struct {
	// client is the HTTP client used for the page fetch. Its Timeout bounds
	// the whole request including body read.
	client *http.Client

	// userAgent is the User-Agent header sent with the request.
	userAgent string

	// maxBodySize limits how much of the response body is read.
	maxBodySize int64
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithFetchTimeout sets the request timeout.
func WithFetchTimeout(timeout time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.client.Timeout = timeout
	}
}

// WithFetcherUserAgent sets a custom User-Agent header.
func WithFetcherUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithFetcherMaxBodySize sets the maximum response body size.
func WithFetcherMaxBodySize(size int64) FetcherOption {
	return func(f *Fetcher) {
		f.maxBodySize = size
	}
}

// WithFetcherClient replaces the HTTP client. Intended for tests.
func WithFetcherClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a Fetcher with a 10-second timeout by default.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:      &http.Client{Timeout: 10 * time.Second},
		userAgent:   "apodwall/1.0",
		maxBodySize: 5 * 1024 * 1024, // 5MB
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// FetchPage performs one GET of the given URL and returns the response body
// decoded as text. The charset is taken from the Content-Type header, with
// detection fallbacks handled by the charset package.
func (f *Fetcher) FetchPage(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for %s: %w", pageURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status %s fetching %s", resp.Status, pageURL)
	}

	// Decode the body to text using the declared or detected charset.
	limited := io.LimitReader(resp.Body, f.maxBodySize)
	decoded, err := charset.NewReader(limited, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("failed to decode response from %s: %w", pageURL, err)
	}

	body, err := io.ReadAll(decoded)
	if err != nil {
		return "", fmt.Errorf("failed to read response from %s: %w", pageURL, err)
	}

	return string(body), nil
}
