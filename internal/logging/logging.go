package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// DefaultPath is where logs go when no file is configured. The terminal
// belongs to the chat UI, so nothing is written to stdout.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), "astrochat.log")
}

// Setup opens path for appending and installs a text handler as the default
// logger. The returned closer releases the file.
func Setup(path string, debug bool) (*slog.Logger, io.Closer, error) {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, errors.Wrapf(err, "create log dir for %s", path)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open log file %s", path)
	}
	logger := New(f, debug)
	slog.SetDefault(logger)
	return logger, f, nil
}

// New builds a text logger on w.
func New(w io.Writer, debug bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		opts.Level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
