package apod

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestDownloaderDownload(t *testing.T) {
	t.Parallel()

	imageBytes := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 1, 2, 3}

	newImageServer := func(body []byte) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(body)
		}))
	}

	t.Run("saves remote bytes to destination", func(t *testing.T) {
		t.Parallel()
		srv := newImageServer(imageBytes)
		defer srv.Close()

		dest := filepath.Join(t.TempDir(), "apod.png")
		if err := NewDownloader().Download(context.Background(), srv.URL, dest); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		got, err := os.ReadFile(dest)
		if err != nil {
			t.Fatalf("failed to read downloaded file: %v", err)
		}
		if !bytes.Equal(got, imageBytes) {
			t.Errorf("downloaded bytes differ from served bytes")
		}
	})

	t.Run("overwrites an existing file", func(t *testing.T) {
		t.Parallel()
		srv := newImageServer(imageBytes)
		defer srv.Close()

		dest := filepath.Join(t.TempDir(), "apod.png")
		if err := os.WriteFile(dest, []byte("stale image from yesterday"), 0600); err != nil {
			t.Fatalf("failed to seed stale file: %v", err)
		}

		if err := NewDownloader().Download(context.Background(), srv.URL, dest); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		got, err := os.ReadFile(dest)
		if err != nil {
			t.Fatalf("failed to read downloaded file: %v", err)
		}
		if !bytes.Equal(got, imageBytes) {
			t.Errorf("expected stale file replaced with served bytes")
		}
	})

	t.Run("repeated download yields identical file", func(t *testing.T) {
		t.Parallel()
		srv := newImageServer(imageBytes)
		defer srv.Close()

		dest := filepath.Join(t.TempDir(), "apod.png")
		d := NewDownloader()

		if err := d.Download(context.Background(), srv.URL, dest); err != nil {
			t.Fatalf("first download failed: %v", err)
		}
		first, err := os.ReadFile(dest)
		if err != nil {
			t.Fatalf("failed to read first download: %v", err)
		}

		if err := d.Download(context.Background(), srv.URL, dest); err != nil {
			t.Fatalf("second download failed: %v", err)
		}
		second, err := os.ReadFile(dest)
		if err != nil {
			t.Fatalf("failed to read second download: %v", err)
		}

		if !bytes.Equal(first, second) {
			t.Error("expected bitwise-identical file after second run")
		}
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "gone", http.StatusGone)
		}))
		defer srv.Close()

		dest := filepath.Join(t.TempDir(), "apod.png")
		if err := NewDownloader().Download(context.Background(), srv.URL, dest); err == nil {
			t.Error("expected error for non-2xx response")
		}
	})

	t.Run("invalid destination path is an error", func(t *testing.T) {
		t.Parallel()
		srv := newImageServer(imageBytes)
		defer srv.Close()

		dest := filepath.Join(t.TempDir(), "missing-dir", "apod.png")
		if err := NewDownloader().Download(context.Background(), srv.URL, dest); err == nil {
			t.Error("expected error for nonexistent destination directory")
		}
	})

	t.Run("connection error is an error", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		url := srv.URL
		srv.Close()

		dest := filepath.Join(t.TempDir(), "apod.png")
		if err := NewDownloader().Download(context.Background(), url, dest); err == nil {
			t.Error("expected connection error")
		}
	})
}
