package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwhitfield/codsync/internal/configs"
	"github.com/mwhitfield/codsync/internal/settings"
	"github.com/mwhitfield/codsync/internal/ui"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}

		configPath, err := configs.ConfigPath()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve config path: %v", err)
		}

		fmt.Println("Config file: " + ui.Path.Sprint(configPath))

		installPath := config.Game.InstallPath
		if installPath == "" {
			installPath = ui.Muted.Sprint("default Steam path")
		} else {
			installPath = ui.Path.Sprint(installPath)
		}
		fmt.Println("Install path: " + installPath)

		root := config.Game.DocumentsRoot
		if root == "" {
			root = ui.Muted.Sprint("platform default")
		} else {
			root = ui.Path.Sprint(root)
		}
		fmt.Println("Documents root: " + root)

		categories := config.Sync.Categories
		suffix := ""
		if len(categories) == 0 {
			categories = settings.DefaultCategories
			suffix = " " + ui.Muted.Sprint("default")
		}
		fmt.Println("Categories: " + ui.Highlight.Sprint(strings.Join(categories, ", ")) + suffix)

		if config.Machine.ID != "" {
			fmt.Println("Machine id: " + ui.Muted.Sprint(config.Machine.ID))
		}
		return nil
	},
}
