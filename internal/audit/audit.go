package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/mwhitfield/codsync/internal/configs"
)

// Entry represents a single operation log entry.
type Entry struct {
	Timestamp string `json:"ts"`                // RFC3339 with microseconds.
	Machine   string `json:"machine,omitempty"` // Machine id from the tool config.
	Operation string `json:"op"`                // Operation name.

	// Optional fields depending on operation.
	FilesCount   int    `json:"files_count,omitempty"`   // For export/import/backup.
	SkippedCount int    `json:"skipped_count,omitempty"` // For export.
	KeysApplied  int    `json:"keys_applied,omitempty"`  // For import.
	SuccessCount int    `json:"success_count,omitempty"` // For backup.
	FailureCount int    `json:"failure_count,omitempty"` // For backup.
	OutputPath   string `json:"output_path,omitempty"`   // For export.
	DocumentPath string `json:"document_path,omitempty"` // For import.
}

// Log appends an entry to the operation log.
// If logging fails, the entry is dropped. Operations should not fail
// just because operation logging failed.
func Log(entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	logPath := LogPath()
	if logPath == "" {
		return
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogWithMachine is a convenience function that populates the machine id
// from the tool config.
func LogWithMachine(op string) Entry {
	entry := Entry{Operation: op}

	config, err := configs.Load()
	if err != nil {
		return entry
	}

	entry.Machine = config.Machine.ID
	return entry
}

// LogPath returns the path to the operation log file.
// Returns empty string if the config directory cannot be resolved.
func LogPath() string {
	dir, err := configs.ConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "operations.jsonl")
}

// ParseEntries parses operation log content into entries.
// Malformed lines are skipped to handle partial writes.
func ParseEntries(data []byte) []Entry {
	var entries []Entry

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}

	return entries
}
