package db

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestAtomicAppendAddsNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	payload := []byte(`{"type":"ping"}`)
	if err := atomicAppend(path, payload); err != nil {
		t.Fatalf("atomicAppend: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		t.Fatalf("expected newline suffix, got %q", string(data))
	}
	if string(data) != string(payload)+"\n" {
		t.Fatalf("unexpected contents: %q", string(data))
	}
}

func TestAtomicAppendConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	const count = 8

	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(count)
	for i := 0; i < count; i++ {
		i := i
		go func() {
			defer wg.Done()
			<-start
			if err := atomicAppend(path, []byte(fmt.Sprintf("line-%d", i))); err != nil {
				t.Errorf("atomicAppend %d: %v", i, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	lines, err := readJSONLLines(path)
	if err != nil {
		t.Fatalf("read lines: %v", err)
	}
	if len(lines) != count {
		t.Fatalf("expected %d lines, got %d", count, len(lines))
	}
}

func TestReadJSONLLinesMissingFile(t *testing.T) {
	lines, err := readJSONLLines(filepath.Join(t.TempDir(), "absent.jsonl"))
	if err != nil {
		t.Fatalf("read missing: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected no lines, got %v", lines)
	}
}

func TestReadJSONLLinesSkipsTruncatedTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	content := `{"type":"a"}` + "\n\n" + `{"type":"b"}` + "\n" + `{"type":"c`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines, err := readJSONLLines(path)
	if err != nil {
		t.Fatalf("read lines: %v", err)
	}
	if len(lines) != 2 || !strings.Contains(lines[1], `"b"`) {
		t.Fatalf("unexpected lines: %v", lines)
	}
}

func TestRecordType(t *testing.T) {
	kind, err := recordType(`{"type":"rating","stars":4}`)
	if err != nil {
		t.Fatalf("recordType: %v", err)
	}
	if kind != "rating" {
		t.Fatalf("expected rating, got %q", kind)
	}
	if _, err := recordType("not json"); err == nil {
		t.Fatalf("expected error for invalid json")
	}
}
