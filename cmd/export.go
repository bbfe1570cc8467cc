package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	cserrors "github.com/mwhitfield/codsync/internal/errors"
	"github.com/mwhitfield/codsync/internal/ui"
	"github.com/mwhitfield/codsync/internal/workflows"
)

var exportOutputPath string

func init() {
	exportCmd.Flags().StringVarP(&exportOutputPath, "output", "o", "", "output path for the settings document (default: codsync-settings-YYYY-MM-DD.json)")
}

// resetExportCommandState resets the export command's global state for testing.
func resetExportCommandState() {
	exportOutputPath = ""
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export filtered settings from every profile to a JSON document",
	Long: `Discovers every profile config file under the players folder and writes
the filtered settings of each one into a single JSON document.

Only settings whose name contains a configured category token (mouse,
fov, brightness, hdr, adssensitivity, gamepad, sprint by default) are
exported. Files that cannot be parsed are skipped; the rest are still
exported.

Examples:
  # Export to default filename
  codsync export

  # Export to custom path
  codsync export -o ~/backups/settings.json

  # Export with a custom documents folder
  codsync export --documents /mnt/windows/Users/me/Documents`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting export command")
		spinner, cleanup := startSpinner("Exporting settings...", verbose)
		defer cleanup()

		root, err := documentsRoot()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}
		Logger.Debugf("Documents root: %s", root)

		categories, err := configuredCategories()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}

		result, err := workflows.Export(cmd.Context(), workflows.ExportOptions{
			DocumentsRoot: root,
			Categories:    categories,
			OutputPath:    exportOutputPath,
		})
		if err != nil {
			if errors.Is(err, cserrors.ErrDocumentsNotFound) || errors.Is(err, cserrors.ErrNoConfigFiles) {
				spinner.FinalMSG = ui.Error.Sprint("✗") + " No profile config files found\n" +
					ui.Info.Sprint("→") + " Run the game once so it writes its config files, or point codsync at them with " + ui.Code.Sprint("codsync export --documents <dir>")
				return nil
			}
			return Logger.ErrorfAndReturn("export failed: %v", err)
		}

		finalMessage := ui.Success.Sprint("✓") +
			fmt.Sprintf(" Exported %d setting(s) from %d file(s) to ", result.SettingCount, result.FilesExported) +
			ui.Path.Sprint(result.OutputPath)
		if result.FilesSkipped > 0 {
			finalMessage += "\n" + ui.Warning.Sprint("⚠") +
				fmt.Sprintf(" Skipped %d unreadable file(s)", result.FilesSkipped)
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
