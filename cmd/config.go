package cmd

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage codsync configuration",
	Long: `View and change the persisted codsync configuration.

The config stores the game install path, an optional documents-folder
override, and the category list that controls which settings are
exported.`,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCategoriesCmd)
	configCmd.AddCommand(configSetDocumentsCmd)
}
