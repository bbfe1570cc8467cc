package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/mwhitfield/codsync/internal/configs"
	"github.com/mwhitfield/codsync/internal/ui"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it.
// This ensures consistent output formatting across all commands.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
		}

		if !verbose && !debug {
			s.FinalMSG = finalMsg
			s.Stop()
		} else if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// documentsRoot resolves the documents directory for the current
// invocation: the --documents flag wins, then the configured override,
// then empty (workflows fall back to the platform default).
func documentsRoot() (string, error) {
	if documents != "" {
		return documents, nil
	}
	config, err := configs.Load()
	if err != nil {
		return "", err
	}
	return config.Game.DocumentsRoot, nil
}

// configuredCategories returns the configured category override, or nil
// for the built-in default list.
func configuredCategories() ([]string, error) {
	config, err := configs.Load()
	if err != nil {
		return nil, err
	}
	return config.Sync.Categories, nil
}
