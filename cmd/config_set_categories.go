package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwhitfield/codsync/internal/configs"
	"github.com/mwhitfield/codsync/internal/ui"
)

var configSetCategoriesCmd = &cobra.Command{
	Use:   "set-categories <category,...>",
	Short: "Override the setting categories selected for export",
	Long: `Replaces the category list used to filter settings during export.

Categories are substring tokens matched case-insensitively against
setting names, so "fov" also selects keys like cg_fovScale. Pass
"default" to drop the override and return to the built-in list.

Examples:
  codsync config set-categories fov,mouse,hdr
  codsync config set-categories default`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}

		if args[0] == "default" {
			config.Sync.Categories = nil
		} else {
			var categories []string
			for _, category := range strings.Split(args[0], ",") {
				category = strings.TrimSpace(strings.ToLower(category))
				if category != "" {
					categories = append(categories, category)
				}
			}
			config.Sync.Categories = categories
		}

		if err := configs.Save(config); err != nil {
			return Logger.ErrorfAndReturn("failed to save config: %v", err)
		}

		if config.Sync.Categories == nil {
			fmt.Println(ui.Success.Sprint("✓") + " Categories reset to the built-in default list")
		} else {
			fmt.Println(ui.Success.Sprint("✓") + " Categories set to " +
				ui.Highlight.Sprint(strings.Join(config.Sync.Categories, ", ")))
		}
		return nil
	},
}
