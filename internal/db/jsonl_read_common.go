package db

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

func readJSONLLines(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "open %s", filePath)
	}
	defer file.Close()

	truncated := false
	if info, err := file.Stat(); err == nil && info.Size() > 0 {
		buf := make([]byte, 1)
		if _, err := file.ReadAt(buf, info.Size()-1); err == nil {
			truncated = buf[0] != '\n'
		}
	}

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "scan %s", filePath)
	}
	if truncated && len(lines) > 0 {
		slog.Warn("truncated JSONL line skipped", "path", filePath)
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// recordType peeks at the "type" discriminator of a JSONL line.
func recordType(line string) (string, error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(line), &envelope); err != nil {
		return "", err
	}
	return envelope.Type, nil
}
