package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	cserrors "github.com/mwhitfield/codsync/internal/errors"
	"github.com/mwhitfield/codsync/internal/ui"
	"github.com/mwhitfield/codsync/internal/workflows"
)

var logLimit int

func init() {
	logCmd.Flags().IntVarP(&logLimit, "limit", "n", 10, "maximum number of entries to show (0 for all)")
}

// resetLogCommandState resets the log command's global state for testing.
func resetLogCommandState() {
	logLimit = 10
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent export, import, and backup operations",
	Long: `Reads the operation log and prints recent entries, most recent first.

Examples:
  codsync log
  codsync log -n 25`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting log command")

		result, err := workflows.Log(cmd.Context(), workflows.LogOptions{Limit: logLimit})
		if err != nil {
			if errors.Is(err, cserrors.ErrFileNotFound) {
				fmt.Println(ui.Muted.Sprint("no operations recorded yet"))
				return nil
			}
			return Logger.ErrorfAndReturn("failed to read operation log: %v", err)
		}

		for _, entry := range result.Entries {
			line := entry.Timestamp + "  " + ui.Highlight.Sprint(entry.Operation)
			switch entry.Operation {
			case "export":
				line += fmt.Sprintf("  %d file(s) -> %s", entry.FilesCount, ui.Path.Sprint(entry.OutputPath))
				if entry.SkippedCount > 0 {
					line += " " + ui.Muted.Sprintf("%d skipped", entry.SkippedCount)
				}
			case "import":
				line += fmt.Sprintf("  %d setting(s) into %d file(s) from %s",
					entry.KeysApplied, entry.FilesCount, ui.Path.Sprint(entry.DocumentPath))
			case "backup":
				line += fmt.Sprintf("  %d of %d file(s)", entry.SuccessCount, entry.FilesCount)
				if entry.FailureCount > 0 {
					line += " " + ui.Warning.Sprintf("%d failed", entry.FailureCount)
				}
			}
			fmt.Println(line)
		}

		if result.TotalEntries > len(result.Entries) {
			fmt.Println(ui.Muted.Sprintf("showing %d of %d entries", len(result.Entries), result.TotalEntries))
		}
		return nil
	},
}
