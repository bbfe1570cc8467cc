package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	cserrors "github.com/mwhitfield/codsync/internal/errors"
	"github.com/mwhitfield/codsync/internal/gamepath"
	"github.com/mwhitfield/codsync/internal/ui"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the discovered profiles and their config files",
	Long: `Discovers the per-profile config files under the players folder and
lists them grouped by profile.

Examples:
  codsync profiles
  codsync profiles --documents /mnt/windows/Users/me/Documents`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting profiles command")

		root, err := documentsRoot()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}
		if root == "" {
			root, err = gamepath.DefaultDocumentsRoot()
			if err != nil {
				return Logger.ErrorfAndReturn("failed to resolve documents directory: %v", err)
			}
		}
		Logger.Debugf("Documents root: %s", root)

		files, err := gamepath.DiscoverProfileConfigFiles(root)
		if err != nil {
			if errors.Is(err, cserrors.ErrDocumentsNotFound) || errors.Is(err, cserrors.ErrNoConfigFiles) {
				fmt.Println(ui.Error.Sprint("✗") + " No profile config files found under " + ui.Path.Sprint(root))
				return nil
			}
			return Logger.ErrorfAndReturn("discovery failed: %v", err)
		}

		// Group for display; directory-enumeration order within a profile.
		byProfile := make(map[string][]gamepath.ProfileConfigFile)
		var order []string
		for _, file := range files {
			if _, seen := byProfile[file.Profile]; !seen {
				order = append(order, file.Profile)
			}
			byProfile[file.Profile] = append(byProfile[file.Profile], file)
		}

		fmt.Printf("Found %d config file(s) in %d profile(s):\n\n", len(files), len(order))
		for _, profile := range order {
			fmt.Println(ui.Highlight.Sprint(profile))
			for _, file := range byProfile[profile] {
				fmt.Println("  " + ui.Path.Sprint(file.Name))
			}
		}
		return nil
	},
}
