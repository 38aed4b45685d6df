package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// RotatingWriter is an io.WriteCloser that writes to a file and rotates it
// once it grows past a size threshold. Rotation shifts existing backups up
// (<name>.1 becomes <name>.2 and so on), renames the active file to <name>.1,
// and starts a fresh active file. Backups beyond the configured count are
// discarded.
//
// A single process-wide writer is expected; the mutex only guards against
// concurrent use by multiple slog handlers, not against other processes.
type RotatingWriter struct {
	mu sync.Mutex

	// path is the active log file path.
	path string

	// maxSize is the size threshold in bytes that triggers rotation.
	maxSize int64

	// backupCount is the number of rotated files to retain.
	// Zero means the active file is simply truncated on rotation.
	backupCount int

	// file is the currently open active file.
	file *os.File

	// size is the current size of the active file.
	size int64
}

// NewRotatingWriter opens (or creates) the active log file at path in append
// mode, creating parent directories as needed.
func NewRotatingWriter(path string, maxSize int64, backupCount int) (*RotatingWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	w := &RotatingWriter{
		path:        path,
		maxSize:     maxSize,
		backupCount: backupCount,
	}
	if err := w.open(); err != nil {
		return nil, err
	}
	return w, nil
}

// open opens the active file in append mode and records its current size.
func (w *RotatingWriter) open() error {
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", w.path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close() //nolint:errcheck // Best effort cleanup
		return fmt.Errorf("failed to stat log file %s: %w", w.path, err)
	}

	w.file = f
	w.size = info.Size()
	return nil
}

// Write appends p to the active file, rotating first when the write would
// push a non-empty file past the size threshold. A record larger than the
// threshold is still written whole; records are never split across files.
func (w *RotatingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.size > 0 && w.size+int64(len(p)) > w.maxSize {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := w.file.Write(p)
	w.size += int64(n)
	return n, err
}

// rotate closes the active file, shifts backups, and opens a fresh file.
func (w *RotatingWriter) rotate() error {
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file for rotation: %w", err)
	}

	if w.backupCount == 0 {
		// No backups retained: discard the active file.
		if err := os.Remove(w.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove log file: %w", err)
		}
		return w.open()
	}

	// Shift existing backups up, dropping the oldest.
	oldest := w.backupPath(w.backupCount)
	if err := os.Remove(oldest); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove oldest log backup: %w", err)
	}
	for i := w.backupCount - 1; i >= 1; i-- {
		src := w.backupPath(i)
		if _, err := os.Stat(src); err != nil {
			continue
		}
		if err := os.Rename(src, w.backupPath(i+1)); err != nil {
			return fmt.Errorf("failed to shift log backup %s: %w", src, err)
		}
	}

	if err := os.Rename(w.path, w.backupPath(1)); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	return w.open()
}

// backupPath returns the path of the n-th backup file.
func (w *RotatingWriter) backupPath(n int) string {
	return fmt.Sprintf("%s.%d", w.path, n)
}

// Close closes the active file.
func (w *RotatingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}
