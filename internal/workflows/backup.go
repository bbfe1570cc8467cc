package workflows

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mwhitfield/codsync/internal/audit"
	"github.com/mwhitfield/codsync/internal/gamepath"
)

// BackupOptions configures the backup workflow.
type BackupOptions struct {
	// DocumentsRoot is the documents directory holding the players tree.
	// If empty, the platform default is used.
	DocumentsRoot string

	// DryRun previews the backup without copying anything.
	DryRun bool
}

// BackupFailure records a single file that could not be backed up.
type BackupFailure struct {
	// File is the basename of the config file.
	File string

	// Err is the copy failure.
	Err error
}

// BackupReport contains the outcome of a backup operation.
type BackupReport struct {
	// SuccessCount is the number of files copied.
	SuccessCount int

	// Failures lists the files that could not be copied.
	Failures []BackupFailure

	// DryRun indicates whether this was a dry-run.
	DryRun bool
}

// Backup copies every profile config file to a timestamped sibling named
// <original>.bak_<YYYYMMDD_HHMMSS> in the same directory.
//
// Per-file failures are collected, never fatal: every file is attempted
// regardless of earlier failures. Originals are never modified, deleted,
// or truncated.
func Backup(ctx context.Context, opts BackupOptions) (*BackupReport, error) {
	documentsRoot, err := resolveDocumentsRoot(opts.DocumentsRoot)
	if err != nil {
		return nil, err
	}

	files, err := gamepath.DiscoverProfileConfigFiles(documentsRoot)
	if err != nil {
		return nil, err
	}

	// One stamp per batch keeps a run's backups grouped and sortable.
	stamp := time.Now().Format("20060102_150405")

	report := &BackupReport{DryRun: opts.DryRun}

	for _, file := range files {
		if opts.DryRun {
			report.SuccessCount++
			continue
		}

		destination := file.Path + ".bak_" + stamp
		if err := copyFile(file.Path, destination); err != nil {
			report.Failures = append(report.Failures, BackupFailure{
				File: file.Name,
				Err:  err,
			})
			continue
		}
		report.SuccessCount++
	}

	if !opts.DryRun {
		entry := audit.LogWithMachine("backup")
		entry.FilesCount = len(files)
		entry.SuccessCount = report.SuccessCount
		entry.FailureCount = len(report.Failures)
		audit.Log(entry)
	}

	return report, nil
}

// copyFile copies src to dst byte for byte.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying to %s: %w", dst, err)
	}

	return out.Close()
}
