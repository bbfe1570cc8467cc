package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwhitfield/codsync/internal/configs"
	"github.com/mwhitfield/codsync/internal/ui"
)

var configSetDocumentsCmd = &cobra.Command{
	Use:   "set-documents <dir>",
	Short: "Override the documents directory holding the players folder",
	Long: `Persists a documents-folder override for machines where the game does
not write under the platform default (Wine prefixes, relocated
libraries, network homes).

Pass "default" to drop the override.

Examples:
  codsync config set-documents /mnt/windows/Users/me/Documents
  codsync config set-documents default`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}

		if args[0] == "default" {
			config.Game.DocumentsRoot = ""
		} else {
			info, err := os.Stat(args[0])
			if err != nil || !info.IsDir() {
				fmt.Println(ui.Error.Sprint("✗") + " " + ui.Path.Sprint(args[0]) + " is not a directory")
				return nil
			}
			config.Game.DocumentsRoot = args[0]
		}

		if err := configs.Save(config); err != nil {
			return Logger.ErrorfAndReturn("failed to save config: %v", err)
		}

		if config.Game.DocumentsRoot == "" {
			fmt.Println(ui.Success.Sprint("✓") + " Documents root reset to the platform default")
		} else {
			fmt.Println(ui.Success.Sprint("✓") + " Documents root set to " + ui.Path.Sprint(config.Game.DocumentsRoot))
		}
		return nil
	},
}
