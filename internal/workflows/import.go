package workflows

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mwhitfield/codsync/internal/audit"
	cserrors "github.com/mwhitfield/codsync/internal/errors"
	"github.com/mwhitfield/codsync/internal/gamepath"
	"github.com/mwhitfield/codsync/internal/settings"
)

// ImportOptions configures the import workflow.
type ImportOptions struct {
	// DocumentsRoot is the documents directory holding the players tree.
	// If empty, the platform default is used.
	DocumentsRoot string

	// DocumentPath is the path to the exported settings document.
	DocumentPath string

	// DryRun previews the import without writing any config file.
	DryRun bool
}

// ImportResult contains the outcome of an import operation.
type ImportResult struct {
	// FilesUpdated is the count of config files rewritten with merged
	// settings.
	FilesUpdated int

	// FilesUnchanged is the count of config files whose section applied
	// zero changes; those files are not rewritten.
	FilesUnchanged int

	// FilesFailed is the count of config files that could not be read or
	// written.
	FilesFailed int

	// KeysApplied is the total number of settings that changed a line or
	// appended one.
	KeysApplied int

	// DryRun indicates whether this was a dry-run.
	DryRun bool
}

// Import merges an exported settings document back into the live profile
// config files.
//
// Each document section is matched to the discovered config file with
// the same basename. Within a file, each setting replaces the first line
// that starts with the key and carries an "=", or is appended when no
// line matches; unrelated lines are preserved byte for byte. A file is
// rewritten only when at least one setting changed something, so
// repeating an import is a no-op. Config files on disk with no section
// in the document, and sections with no file on disk, are both ignored.
//
// Returns ErrMalformedDocument if the document cannot be decoded into
// the expected mapping shape, or if any setting key or value contains a
// line break: a corrupt document cannot be partially trusted, so
// nothing is written. Per-file read/write failures are
// counted and skipped.
func Import(ctx context.Context, opts ImportOptions) (*ImportResult, error) {
	data, err := os.ReadFile(opts.DocumentPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", cserrors.ErrFileNotFound, opts.DocumentPath)
		}
		return nil, fmt.Errorf("reading settings document: %w", err)
	}

	var document map[string]map[string]string
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("%w: %v", cserrors.ErrMalformedDocument, err)
	}

	// Settings land on single lines of a config file, so a key or value
	// carrying a line break would smuggle extra lines in and re-append
	// them on every import.
	for name, section := range document {
		for key, value := range section {
			if strings.ContainsAny(key, "\r\n") || strings.ContainsAny(value, "\r\n") {
				return nil, fmt.Errorf("%w: setting %q in section %q contains a line break",
					cserrors.ErrMalformedDocument, key, name)
			}
		}
	}

	documentsRoot, err := resolveDocumentsRoot(opts.DocumentsRoot)
	if err != nil {
		return nil, err
	}

	files, err := gamepath.DiscoverProfileConfigFiles(documentsRoot)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{DryRun: opts.DryRun}

	for _, file := range files {
		section, ok := document[file.Name]
		if !ok {
			continue
		}

		raw, err := os.ReadFile(file.Path)
		if err != nil {
			result.FilesFailed++
			continue
		}

		lines := splitLines(string(raw))
		merged, changed := settings.MergeLines(lines, section)
		if changed == 0 {
			result.FilesUnchanged++
			continue
		}

		if !opts.DryRun {
			content := strings.Join(merged, "\n")
			if err := os.WriteFile(file.Path, []byte(content), 0644); err != nil {
				result.FilesFailed++
				continue
			}
		}

		result.FilesUpdated++
		result.KeysApplied += changed
	}

	if !opts.DryRun {
		entry := audit.LogWithMachine("import")
		entry.FilesCount = result.FilesUpdated
		entry.KeysApplied = result.KeysApplied
		entry.DocumentPath = opts.DocumentPath
		audit.Log(entry)
	}

	return result, nil
}

// splitLines splits config text on newlines, dropping the empty trailer
// a final newline produces so appended settings land on their own line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
