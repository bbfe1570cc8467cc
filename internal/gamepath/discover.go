package gamepath

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	cserrors "github.com/mwhitfield/codsync/internal/errors"
)

// ProfileConfigFile is one per-profile settings file discovered on disk.
type ProfileConfigFile struct {
	// Path is the absolute filesystem path of the file.
	Path string

	// Profile is the name of the owning profile directory.
	Profile string

	// Name is the file basename, used as the stable key in exported
	// settings documents.
	Name string
}

// ConfigFilePattern matches the per-profile settings files the game
// writes: prefix "g.", suffix exactly ".txt0" or ".txt1".
const ConfigFilePattern = "g.*.txt{0,1}"

// playersRelPath is the fixed path of the per-profile players directory
// under the documents root.
var playersRelPath = filepath.Join("Call of Duty", "players")

// MatchesConfigFile reports whether a file basename is a per-profile
// settings file.
func MatchesConfigFile(name string) bool {
	matched, err := doublestar.Match(ConfigFilePattern, name)
	return err == nil && matched
}

// DiscoverProfileConfigFiles enumerates profile config files under the
// given documents root.
//
// Each immediate subdirectory of the players directory is one profile;
// within it, files matching ConfigFilePattern are collected. Results come
// back in directory-enumeration order, which is fine for display but not
// guaranteed sorted.
//
// Returns ErrDocumentsNotFound when the documents root is empty or the
// players directory cannot be read, and ErrNoConfigFiles when the tree
// exists but contains no matching files.
func DiscoverProfileConfigFiles(documentsRoot string) ([]ProfileConfigFile, error) {
	if documentsRoot == "" {
		return nil, cserrors.ErrDocumentsNotFound
	}

	playersDir := filepath.Join(documentsRoot, playersRelPath)

	profiles, err := os.ReadDir(playersDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", cserrors.ErrDocumentsNotFound, playersDir)
		}
		return nil, fmt.Errorf("reading players directory: %w", err)
	}

	var files []ProfileConfigFile
	for _, profile := range profiles {
		if !profile.IsDir() {
			continue
		}

		profileDir := filepath.Join(playersDir, profile.Name())
		entries, err := os.ReadDir(profileDir)
		if err != nil {
			// One unreadable profile must not block the others.
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if !MatchesConfigFile(entry.Name()) {
				continue
			}
			files = append(files, ProfileConfigFile{
				Path:    filepath.Join(profileDir, entry.Name()),
				Profile: profile.Name(),
				Name:    entry.Name(),
			})
		}
	}

	if len(files) == 0 {
		return nil, cserrors.ErrNoConfigFiles
	}

	return files, nil
}
