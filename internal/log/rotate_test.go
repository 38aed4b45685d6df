package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRotatingWriter(t *testing.T) {
	t.Parallel()

	t.Run("creates log directory and file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "logs", "app.log")

		w, err := NewRotatingWriter(path, 1024, 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer w.Close()

		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected active log file to exist: %v", err)
		}
	})

	t.Run("writes below threshold do not rotate", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "app.log")

		w, err := NewRotatingWriter(path, 1024, 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer w.Close()

		if _, err := w.Write([]byte("short line\n")); err != nil {
			t.Fatalf("write failed: %v", err)
		}

		if _, err := os.Stat(path + ".1"); err == nil {
			t.Error("expected no backup file below threshold")
		}
	})

	t.Run("growth beyond threshold rotates into a backup", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "app.log")

		w, err := NewRotatingWriter(path, 64, 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer w.Close()

		first := strings.Repeat("a", 60) + "\n"
		second := "after rotation\n"
		if _, err := w.Write([]byte(first)); err != nil {
			t.Fatalf("first write failed: %v", err)
		}
		if _, err := w.Write([]byte(second)); err != nil {
			t.Fatalf("second write failed: %v", err)
		}

		backup, err := os.ReadFile(path + ".1")
		if err != nil {
			t.Fatalf("expected backup file after rotation: %v", err)
		}
		if string(backup) != first {
			t.Errorf("expected prior content in backup, got %q", backup)
		}

		active, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read active file: %v", err)
		}
		if string(active) != second {
			t.Errorf("expected fresh active file with new content, got %q", active)
		}
	})

	t.Run("backup count bounds retained files", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "app.log")

		w, err := NewRotatingWriter(path, 16, 2)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer w.Close()

		// Force several rotations.
		for i := 0; i < 6; i++ {
			if _, err := w.Write(bytes.Repeat([]byte("x"), 20)); err != nil {
				t.Fatalf("write failed: %v", err)
			}
		}

		if _, err := os.Stat(path + ".1"); err != nil {
			t.Errorf("expected backup .1 to exist: %v", err)
		}
		if _, err := os.Stat(path + ".2"); err != nil {
			t.Errorf("expected backup .2 to exist: %v", err)
		}
		if _, err := os.Stat(path + ".3"); err == nil {
			t.Error("expected no backup beyond configured count")
		}
	})

	t.Run("zero backup count discards rotated content", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "app.log")

		w, err := NewRotatingWriter(path, 16, 0)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer w.Close()

		for i := 0; i < 3; i++ {
			if _, err := w.Write(bytes.Repeat([]byte("y"), 20)); err != nil {
				t.Fatalf("write failed: %v", err)
			}
		}

		if _, err := os.Stat(path + ".1"); err == nil {
			t.Error("expected no backups with zero backup count")
		}
	})

	t.Run("appends to existing file on reopen", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "app.log")

		w, err := NewRotatingWriter(path, 1024, 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, err := w.Write([]byte("first run\n")); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("close failed: %v", err)
		}

		w2, err := NewRotatingWriter(path, 1024, 3)
		if err != nil {
			t.Fatalf("reopen failed: %v", err)
		}
		defer w2.Close()
		if _, err := w2.Write([]byte("second run\n")); err != nil {
			t.Fatalf("write failed: %v", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read log: %v", err)
		}
		if string(content) != "first run\nsecond run\n" {
			t.Errorf("expected appended content, got %q", content)
		}
	})
}
