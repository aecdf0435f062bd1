package slogutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// RotatingFile is an io.WriteCloser that rolls the session log over
// once it passes maxSize bytes. Rolled files are numbered suffixes of
// the live path (tui.log.1 is the newest backup).
type RotatingFile struct {
	mu         sync.Mutex
	path       string
	maxSize    int64
	maxBackups int
	file       *os.File
	written    int64
}

// OpenRotatingFile opens path for appending, creating parent
// directories as needed. maxSize 0 disables rotation; maxBackups 0
// discards the old log on each roll.
func OpenRotatingFile(path string, maxSize int64, maxBackups int) (*RotatingFile, error) {
	r := &RotatingFile{path: path, maxSize: maxSize, maxBackups: maxBackups}
	if err := r.reopen(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RotatingFile) reopen() error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return err
	}
	r.file = f
	r.written = info.Size()
	return nil
}

func (r *RotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.maxSize > 0 && r.written+int64(len(p)) > r.maxSize {
		// A failed roll must not drop the record; keep appending to
		// the oversized file instead.
		_ = r.roll()
	}

	n, err := r.file.Write(p)
	r.written += int64(n)
	return n, err
}

func (r *RotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	return r.file.Close()
}

// roll closes the live file, shifts every backup up one slot and
// reopens a fresh file at the live path.
func (r *RotatingFile) roll() error {
	if r.file != nil {
		if err := r.file.Close(); err != nil {
			return err
		}
	}

	os.Remove(r.numbered(r.maxBackups))
	for n := r.maxBackups - 1; n >= 1; n-- {
		if _, err := os.Stat(r.numbered(n)); err == nil {
			os.Rename(r.numbered(n), r.numbered(n+1))
		}
	}
	if r.maxBackups > 0 {
		os.Rename(r.path, r.numbered(1))
	} else {
		os.Remove(r.path)
	}

	r.written = 0
	return r.reopen()
}

func (r *RotatingFile) numbered(n int) string {
	return fmt.Sprintf("%s.%d", r.path, n)
}

// ParseSize converts a human size like "5MB" or "500KB" to bytes. A
// bare number means bytes. Empty or unparseable input yields 0, which
// callers treat as rotation disabled.
func ParseSize(s string) int64 {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0
	}

	multiplier := int64(1)
	for _, unit := range []struct {
		suffix string
		factor int64
	}{
		{"GB", 1 << 30},
		{"MB", 1 << 20},
		{"KB", 1 << 10},
		{"B", 1},
	} {
		if strings.HasSuffix(s, unit.suffix) {
			multiplier = unit.factor
			s = strings.TrimSpace(strings.TrimSuffix(s, unit.suffix))
			break
		}
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || value < 0 {
		return 0
	}
	return int64(value * float64(multiplier))
}

// NewFileLoggerWithRotation builds a file logger that rolls at maxSize
// (e.g. "5MB"), keeping maxBackups old files. An empty or invalid
// maxSize falls back to a plain file logger.
func NewFileLoggerWithRotation(path string, level slog.Level, maxSize string, maxBackups int) (*slog.Logger, io.Closer, error) {
	size := ParseSize(maxSize)
	if size <= 0 {
		return NewFileLogger(path, level)
	}

	rf, err := OpenRotatingFile(path, size, maxBackups)
	if err != nil {
		return nil, nil, err
	}
	return NewLogger(rf, level), rf, nil
}
