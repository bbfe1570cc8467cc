package workflows

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mwhitfield/codsync/internal/audit"
	"github.com/mwhitfield/codsync/internal/gamepath"
	"github.com/mwhitfield/codsync/internal/settings"
)

// ExportOptions configures the export workflow.
type ExportOptions struct {
	// DocumentsRoot is the documents directory holding the players tree.
	// If empty, the platform default is used.
	DocumentsRoot string

	// Categories overrides the setting-name tokens selected for export.
	// If empty, settings.DefaultCategories is used.
	Categories []string

	// OutputPath is the path for the settings document.
	// If empty, defaults to codsync-settings-YYYY-MM-DD.json.
	OutputPath string
}

// ExportResult contains the outcome of an export operation.
type ExportResult struct {
	// FilesExported is the number of config files included in the document.
	FilesExported int

	// FilesSkipped is the number of config files that failed to parse.
	FilesSkipped int

	// SettingCount is the total number of settings across all files.
	SettingCount int

	// OutputPath is the path the document was written to.
	OutputPath string
}

// Export discovers every profile config file, extracts the filtered
// settings from each, and writes a single JSON document mapping file
// basename to its settings.
//
// Per-file parse failures are skipped, not fatal: one corrupt profile
// file must not block exporting the others. Even a document with zero
// sections is written, so the output is always valid JSON.
//
// Returns ErrDocumentsNotFound or ErrNoConfigFiles from discovery, or an
// error if the final write fails.
func Export(ctx context.Context, opts ExportOptions) (*ExportResult, error) {
	documentsRoot, err := resolveDocumentsRoot(opts.DocumentsRoot)
	if err != nil {
		return nil, err
	}

	files, err := gamepath.DiscoverProfileConfigFiles(documentsRoot)
	if err != nil {
		return nil, err
	}

	categories := opts.Categories
	if len(categories) == 0 {
		categories = settings.DefaultCategories
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = fmt.Sprintf("codsync-settings-%s.json", time.Now().Format("2006-01-02"))
	}

	result := &ExportResult{OutputPath: outputPath}

	document := make(map[string]map[string]string)
	for _, file := range files {
		parsed, err := settings.ParseFile(file.Path)
		if err != nil {
			result.FilesSkipped++
			continue
		}

		filtered := settings.Filter(parsed, categories)
		document[file.Name] = filtered
		result.FilesExported++
		result.SettingCount += len(filtered)
	}

	// MarshalIndent sorts map keys, so identical settings always produce
	// an identical document.
	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding settings document: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return nil, fmt.Errorf("writing settings document: %w", err)
	}

	entry := audit.LogWithMachine("export")
	entry.FilesCount = result.FilesExported
	entry.SkippedCount = result.FilesSkipped
	entry.OutputPath = outputPath
	audit.Log(entry)

	return result, nil
}

// resolveDocumentsRoot applies the platform default when no override is
// configured.
func resolveDocumentsRoot(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return gamepath.DefaultDocumentsRoot()
}
