package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	cserrors "github.com/mwhitfield/codsync/internal/errors"
	"github.com/mwhitfield/codsync/internal/ui"
	"github.com/mwhitfield/codsync/internal/workflows"
)

var importDryRun bool

func init() {
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "preview the import without writing any config file")
}

// resetImportCommandState resets the import command's global state for testing.
func resetImportCommandState() {
	importDryRun = false
}

var importCmd = &cobra.Command{
	Use:   "import <document.json>",
	Short: "Merge an exported settings document back into the live config files",
	Long: `Reads a settings document produced by 'codsync export' and merges its
values into the matching profile config files.

Only the settings named in the document are touched; every other line in
each config file is preserved byte for byte. Config files with no
section in the document are left completely alone, and a file is only
rewritten when at least one setting actually changed.

Examples:
  # Import a document
  codsync import settings.json

  # See what would change without writing anything
  codsync import settings.json --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting import command")
		spinner, cleanup := startSpinner("Importing settings...", verbose)
		defer cleanup()

		root, err := documentsRoot()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}

		result, err := workflows.Import(cmd.Context(), workflows.ImportOptions{
			DocumentsRoot: root,
			DocumentPath:  args[0],
			DryRun:        importDryRun,
		})
		if err != nil {
			switch {
			case errors.Is(err, cserrors.ErrMalformedDocument):
				spinner.FinalMSG = ui.Error.Sprint("✗") + " " + ui.Path.Sprint(args[0]) + " is not a valid settings document\n" +
					ui.Info.Sprint("→") + " Re-create it with " + ui.Code.Sprint("codsync export")
				return nil
			case errors.Is(err, cserrors.ErrFileNotFound):
				spinner.FinalMSG = ui.Error.Sprint("✗") + " " + ui.Path.Sprint(args[0]) + " does not exist"
				return nil
			case errors.Is(err, cserrors.ErrDocumentsNotFound), errors.Is(err, cserrors.ErrNoConfigFiles):
				spinner.FinalMSG = ui.Error.Sprint("✗") + " No profile config files found to import into"
				return nil
			}
			return Logger.ErrorfAndReturn("import failed: %v", err)
		}

		prefix := ui.Success.Sprint("✓") + " "
		if result.DryRun {
			prefix = ui.Warning.Sprint("[dry-run]") + " "
		}

		finalMessage := prefix + fmt.Sprintf("Applied %d setting(s) across %d file(s)",
			result.KeysApplied, result.FilesUpdated)
		if result.FilesUnchanged > 0 {
			finalMessage += " " + ui.Muted.Sprintf("%d file(s) already up to date", result.FilesUnchanged)
		}
		if result.FilesFailed > 0 {
			finalMessage += "\n" + ui.Warning.Sprint("⚠") +
				fmt.Sprintf(" %d file(s) could not be updated", result.FilesFailed)
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
