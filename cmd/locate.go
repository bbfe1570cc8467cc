package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mwhitfield/codsync/internal/configs"
	cserrors "github.com/mwhitfield/codsync/internal/errors"
	"github.com/mwhitfield/codsync/internal/gamepath"
	"github.com/mwhitfield/codsync/internal/ui"
)

var locateSetPath string

func init() {
	locateCmd.Flags().StringVar(&locateSetPath, "set", "", "validate the given directory as the install root and persist it")
}

// resetLocateCommandState resets the locate command's global state for testing.
func resetLocateCommandState() {
	locateSetPath = ""
}

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Find or set the game installation directory",
	Long: `Checks the configured install path and the default Steam directory for
the game executable.

With --set, the given directory is validated the same way (it must
contain cod.exe) and persisted to the codsync config, replacing any
earlier choice.

Examples:
  # Show the detected install root
  codsync locate

  # Point codsync at a non-default installation
  codsync locate --set "D:/Games/Call of Duty"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting locate command")
		spinner, cleanup := startSpinner("Locating game installation...", verbose)
		defer cleanup()

		if locateSetPath != "" {
			if err := gamepath.ValidateInstallRoot(locateSetPath); err != nil {
				if errors.Is(err, cserrors.ErrInvalidInstallRoot) {
					spinner.FinalMSG = ui.Error.Sprint("✗") + " " + ui.Path.Sprint(gamepath.MarkerExecutable) +
						" not found in " + ui.Path.Sprint(locateSetPath)
					return nil
				}
				return Logger.ErrorfAndReturn("failed to validate %s: %v", locateSetPath, err)
			}

			config, err := configs.Load()
			if err != nil {
				return Logger.ErrorfAndReturn("failed to load config: %v", err)
			}
			config.Game.InstallPath = locateSetPath
			if err := configs.Save(config); err != nil {
				return Logger.ErrorfAndReturn("failed to save config: %v", err)
			}

			spinner.FinalMSG = ui.Success.Sprint("✓") + " Install root set to " + ui.Path.Sprint(locateSetPath)
			return nil
		}

		config, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}

		root, err := gamepath.LocateInstallRoot(config.Game.InstallPath)
		if err != nil {
			if errors.Is(err, cserrors.ErrInstallNotFound) {
				spinner.FinalMSG = ui.Error.Sprint("✗") + " Game installation not found\n" +
					ui.Info.Sprint("→") + " Set it manually with " + ui.Code.Sprint("codsync locate --set <dir>")
				return nil
			}
			return Logger.ErrorfAndReturn("locate failed: %v", err)
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Install root: " + ui.Path.Sprint(root)
		return nil
	},
}
