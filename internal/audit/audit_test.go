package audit

import (
	"os"
	"testing"
)

func useTempConfigDir(t *testing.T) {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("AppData", tempDir)
	t.Setenv("HOME", tempDir)
}

func TestLogAppendsEntries(t *testing.T) {
	useTempConfigDir(t)

	first := Entry{Operation: "export", FilesCount: 2, OutputPath: "settings.json"}
	second := Entry{Operation: "backup", SuccessCount: 2}
	Log(first)
	Log(second)

	data, err := os.ReadFile(LogPath())
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}

	entries := ParseEntries(data)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Operation != "export" || entries[0].FilesCount != 2 {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Operation != "backup" || entries[1].SuccessCount != 2 {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
	if entries[0].Timestamp == "" {
		t.Error("expected timestamp to be set automatically")
	}
}

func TestParseEntriesSkipsMalformedLines(t *testing.T) {
	data := []byte(`{"ts":"2026-08-30T10:00:00.000000Z","op":"export"}
not json
{"ts":"2026-08-30T11:00:00.000000Z","op":"import","keys_applied":3}
`)

	entries := ParseEntries(data)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[1].KeysApplied != 3 {
		t.Errorf("unexpected entry: %+v", entries[1])
	}
}

func TestParseEntriesEmpty(t *testing.T) {
	if entries := ParseEntries(nil); len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}
