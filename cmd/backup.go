package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	cserrors "github.com/mwhitfield/codsync/internal/errors"
	"github.com/mwhitfield/codsync/internal/ui"
	"github.com/mwhitfield/codsync/internal/workflows"
)

var backupDryRun bool

func init() {
	backupCmd.Flags().BoolVar(&backupDryRun, "dry-run", false, "list the files that would be backed up without copying them")
}

// resetBackupCommandState resets the backup command's global state for testing.
func resetBackupCommandState() {
	backupDryRun = false
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Copy every profile config file to a timestamped backup",
	Long: `Copies each profile config file to a sibling named
<file>.bak_<YYYYMMDD_HHMMSS> in the same directory.

Originals are never modified. A file that cannot be copied is reported
and skipped; the remaining files are still backed up.

Examples:
  # Back up every profile config file
  codsync backup

  # See what would be backed up
  codsync backup --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting backup command")
		spinner, cleanup := startSpinner("Backing up config files...", verbose)
		defer cleanup()

		root, err := documentsRoot()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}

		report, err := workflows.Backup(cmd.Context(), workflows.BackupOptions{
			DocumentsRoot: root,
			DryRun:        backupDryRun,
		})
		if err != nil {
			if errors.Is(err, cserrors.ErrDocumentsNotFound) || errors.Is(err, cserrors.ErrNoConfigFiles) {
				spinner.FinalMSG = ui.Error.Sprint("✗") + " No profile config files found to back up"
				return nil
			}
			return Logger.ErrorfAndReturn("backup failed: %v", err)
		}

		var finalMessage string
		if report.DryRun {
			finalMessage = ui.Warning.Sprint("[dry-run]") +
				fmt.Sprintf(" Would have backed up %d file(s)", report.SuccessCount)
		} else {
			finalMessage = ui.Success.Sprint("✓") +
				fmt.Sprintf(" Backed up %d file(s)", report.SuccessCount)
		}

		for _, failure := range report.Failures {
			finalMessage += "\n" + ui.Warning.Sprint("⚠") + " " +
				ui.Path.Sprint(failure.File) + ": " + failure.Err.Error()
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
