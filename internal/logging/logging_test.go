package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRespectsDebug(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug line written at info level: %q", buf.String())
	}
	New(&buf, true).Debug("shown", "id", "3")
	if !strings.Contains(buf.String(), "shown") || !strings.Contains(buf.String(), "id=3") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestSetupWritesFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	path := filepath.Join(t.TempDir(), "logs", "chat.log")
	logger, closer, err := Setup(path, false)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	logger.Info("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "msg=hello") {
		t.Fatalf("unexpected log %q", data)
	}
}
