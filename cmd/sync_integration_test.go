// Integration tests exercising the command layer end to end against a
// temporary players tree.
package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// setupTestEnvironment isolates the config dir and builds a players tree
// with a single profile config file. Returns the documents root and the
// config file path.
func setupTestEnvironment(t *testing.T, content string) (string, string) {
	t.Helper()

	configDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configDir)
	t.Setenv("AppData", configDir)
	t.Setenv("HOME", configDir)

	documentsDir := t.TempDir()
	profileDir := filepath.Join(documentsDir, "Call of Duty", "players", "johndoe")
	if err := os.MkdirAll(profileDir, 0755); err != nil {
		t.Fatalf("Failed to create profile directory: %v", err)
	}

	configPath := filepath.Join(profileDir, "g.johndoe.txt0")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Cleanup(ResetGlobalState)
	return documentsDir, configPath
}

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	ResetGlobalState()
	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}

func TestExportCommandWritesDocument(t *testing.T) {
	documentsDir, _ := setupTestEnvironment(t, "cg_fov = 90\nplayerName = johndoe\n")
	outputPath := filepath.Join(t.TempDir(), "settings.json")

	err := runCommand(t, "export", "--documents", documentsDir, "-o", outputPath)
	if err != nil {
		t.Fatalf("export command failed: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to read exported document: %v", err)
	}

	var document map[string]map[string]string
	if err := json.Unmarshal(data, &document); err != nil {
		t.Fatalf("Exported document is not valid JSON: %v", err)
	}
	if document["g.johndoe.txt0"]["cg_fov"] != "90" {
		t.Errorf("unexpected document contents: %v", document)
	}
	if _, ok := document["g.johndoe.txt0"]["playerName"]; ok {
		t.Errorf("unfiltered key exported: %v", document)
	}
}

func TestExportThenImportRoundTrip(t *testing.T) {
	documentsDir, configPath := setupTestEnvironment(t, "cg_fov = 90\nunrelated_key = keep\n")
	outputPath := filepath.Join(t.TempDir(), "settings.json")

	if err := runCommand(t, "export", "--documents", documentsDir, "-o", outputPath); err != nil {
		t.Fatalf("export command failed: %v", err)
	}

	// Drift the exported setting, then import the document back.
	if err := os.WriteFile(configPath, []byte("cg_fov = 120\nunrelated_key = keep\n"), 0644); err != nil {
		t.Fatalf("Failed to modify config file: %v", err)
	}

	if err := runCommand(t, "import", "--documents", documentsDir, outputPath); err != nil {
		t.Fatalf("import command failed: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}
	if string(data) != "cg_fov = 90\nunrelated_key = keep" {
		t.Errorf("unexpected config contents after import: %q", string(data))
	}
}

func TestBackupCommandCreatesCopy(t *testing.T) {
	documentsDir, configPath := setupTestEnvironment(t, "cg_fov = 90\n")

	if err := runCommand(t, "backup", "--documents", documentsDir); err != nil {
		t.Fatalf("backup command failed: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(configPath))
	if err != nil {
		t.Fatalf("Failed to list profile directory: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected original plus one backup, got %d entries", len(entries))
	}
}

func TestConfigSetCategoriesAndShow(t *testing.T) {
	setupTestEnvironment(t, "cg_fov = 90\n")

	if err := runCommand(t, "config", "set-categories", "fov,Mouse"); err != nil {
		t.Fatalf("set-categories failed: %v", err)
	}

	if err := runCommand(t, "config", "show"); err != nil {
		t.Fatalf("config show failed: %v", err)
	}
}
