package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	logger "github.com/mwhitfield/codsync/internal/logging"
)

var (
	verbose   bool
	debug     bool
	documents string
	Logger    logger.Logger

	RootCmd = &cobra.Command{
		Use:   "codsync",
		Short: "codsync - Export, import, and back up Call of Duty profile settings.",
		Long: `codsync keeps the settings you care about in sync across machines.

It discovers the per-profile config files the game writes under your
Documents folder, extracts a filtered subset of settings (mouse, fov,
brightness, hdr, and friends), and round-trips them through a portable
JSON document.

Features:
  - Export filtered settings from every profile to one JSON document
  - Import a document back, touching only the settings it contains
  - Back up every config file to a timestamped copy before experimenting

Run 'codsync help <command>' for more details on a specific command.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing codsync with verbose=%t, debug=%t", verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			figure.NewFigure("codsync", "", true).Print()
			fmt.Println("\nRun 'codsync --help' to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().StringVar(&documents, "documents", "", "override the documents directory holding the players folder")

	RootCmd.AddCommand(exportCmd)
	RootCmd.AddCommand(importCmd)
	RootCmd.AddCommand(backupCmd)
	RootCmd.AddCommand(profilesCmd)
	RootCmd.AddCommand(locateCmd)
	RootCmd.AddCommand(logCmd)
	RootCmd.AddCommand(configCmd)
}

// Helper functions for testing

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	documents = ""
	resetExportCommandState()
	resetImportCommandState()
	resetBackupCommandState()
	resetLocateCommandState()
	resetLogCommandState()
}
