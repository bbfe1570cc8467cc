package workflows

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cserrors "github.com/mwhitfield/codsync/internal/errors"
)

// writeProfileFile creates one profile config file under the documents
// root and returns its path.
func writeProfileFile(t *testing.T, documentsRoot, profile, name, content string) string {
	t.Helper()
	dir := filepath.Join(documentsRoot, "Call of Duty", "players", profile)
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// isolateConfigDir keeps the operation log out of the real user config.
func isolateConfigDir(t *testing.T) {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("AppData", tempDir)
	t.Setenv("HOME", tempDir)
}

func TestExportWritesDocument(t *testing.T) {
	isolateConfigDir(t)
	documentsRoot := t.TempDir()
	writeProfileFile(t, documentsRoot, "johndoe", "g.johndoe.txt0",
		"cg_fov = 90\nmouseSensitivity = 4.5\nplayerName = johndoe\n")
	writeProfileFile(t, documentsRoot, "other", "g.other.txt0",
		"r_brightness = 0.5\ncustomClass1 = smg\n")

	outputPath := filepath.Join(t.TempDir(), "settings.json")
	result, err := Export(context.Background(), ExportOptions{
		DocumentsRoot: documentsRoot,
		Categories:    []string{"fov", "mouse", "brightness"},
		OutputPath:    outputPath,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.FilesExported)
	assert.Equal(t, 0, result.FilesSkipped)
	assert.Equal(t, 3, result.SettingCount)
	assert.Equal(t, outputPath, result.OutputPath)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var document map[string]map[string]string
	require.NoError(t, json.Unmarshal(data, &document))

	require.Len(t, document, 2)
	assert.Equal(t, map[string]string{
		"cg_fov":           "90",
		"mouseSensitivity": "4.5",
	}, document["g.johndoe.txt0"])
	assert.Equal(t, map[string]string{
		"r_brightness": "0.5",
	}, document["g.other.txt0"])
}

func TestExportFileWithNoMatchesKeepsEmptySection(t *testing.T) {
	isolateConfigDir(t)
	documentsRoot := t.TempDir()
	writeProfileFile(t, documentsRoot, "johndoe", "g.johndoe.txt0",
		"playerName = johndoe\n")

	outputPath := filepath.Join(t.TempDir(), "settings.json")
	result, err := Export(context.Background(), ExportOptions{
		DocumentsRoot: documentsRoot,
		Categories:    []string{"fov"},
		OutputPath:    outputPath,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.FilesExported)
	assert.Equal(t, 0, result.SettingCount)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var document map[string]map[string]string
	require.NoError(t, json.Unmarshal(data, &document))
	section, ok := document["g.johndoe.txt0"]
	require.True(t, ok, "file present at export time must have a section")
	assert.Empty(t, section)
}

func TestExportSkipsUnreadableFile(t *testing.T) {
	isolateConfigDir(t)
	documentsRoot := t.TempDir()
	writeProfileFile(t, documentsRoot, "johndoe", "g.johndoe.txt0", "cg_fov = 90\n")

	// A dangling symlink is discovered but cannot be read; the export
	// must carry on with the remaining files.
	profileDir := filepath.Join(documentsRoot, "Call of Duty", "players", "johndoe")
	require.NoError(t, os.Symlink(
		filepath.Join(profileDir, "missing"),
		filepath.Join(profileDir, "g.ghost.txt1"),
	))

	outputPath := filepath.Join(t.TempDir(), "settings.json")
	result, err := Export(context.Background(), ExportOptions{
		DocumentsRoot: documentsRoot,
		Categories:    []string{"fov"},
		OutputPath:    outputPath,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesExported)
	assert.Equal(t, 1, result.FilesSkipped)

	var document map[string]map[string]string
	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &document))
	assert.Contains(t, document, "g.johndoe.txt0")
	assert.NotContains(t, document, "g.ghost.txt1")
}

func TestExportNoConfigFiles(t *testing.T) {
	isolateConfigDir(t)

	_, err := Export(context.Background(), ExportOptions{
		DocumentsRoot: t.TempDir(),
		OutputPath:    filepath.Join(t.TempDir(), "settings.json"),
	})
	assert.True(t, errors.Is(err, cserrors.ErrDocumentsNotFound) ||
		errors.Is(err, cserrors.ErrNoConfigFiles),
		"expected a discovery error, got %v", err)
}

func TestExportIsDeterministic(t *testing.T) {
	isolateConfigDir(t)
	documentsRoot := t.TempDir()
	writeProfileFile(t, documentsRoot, "johndoe", "g.johndoe.txt0",
		"cg_fov = 90\ncg_fovScale = 1.0\nmouseSensitivity = 4.5\n")

	first := filepath.Join(t.TempDir(), "a.json")
	second := filepath.Join(t.TempDir(), "b.json")

	for _, outputPath := range []string{first, second} {
		_, err := Export(context.Background(), ExportOptions{
			DocumentsRoot: documentsRoot,
			OutputPath:    outputPath,
		})
		require.NoError(t, err)
	}

	firstData, err := os.ReadFile(first)
	require.NoError(t, err)
	secondData, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstData), string(secondData))
}
