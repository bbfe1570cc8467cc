package gamepath

import (
	"fmt"
	"os"
	"path/filepath"

	cserrors "github.com/mwhitfield/codsync/internal/errors"
)

const (
	// DefaultInstallPath is the well-known Steam installation directory.
	DefaultInstallPath = `C:/Program Files (x86)/Steam/steamapps/common/Call of Duty`

	// MarkerExecutable validates that a directory is a genuine install root.
	MarkerExecutable = "cod.exe"
)

// LocateInstallRoot returns the game installation directory.
//
// The configured override is checked first, then the default Steam path.
// A candidate is accepted only if it contains the marker executable as a
// regular file. Returns ErrInstallNotFound when neither candidate
// qualifies.
func LocateInstallRoot(override string) (string, error) {
	candidates := []string{}
	if override != "" {
		candidates = append(candidates, override)
	}
	candidates = append(candidates, DefaultInstallPath)

	for _, dir := range candidates {
		if err := ValidateInstallRoot(dir); err == nil {
			return dir, nil
		}
	}

	return "", cserrors.ErrInstallNotFound
}

// ValidateInstallRoot checks that dir contains the marker executable.
// Used both for the default path probe and for user-chosen directories.
func ValidateInstallRoot(dir string) error {
	marker := filepath.Join(dir, MarkerExecutable)

	info, err := os.Stat(marker)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", cserrors.ErrInvalidInstallRoot, dir)
		}
		return fmt.Errorf("checking %s: %w", marker, err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", cserrors.ErrInvalidInstallRoot, dir)
	}

	return nil
}

// DefaultDocumentsRoot resolves the platform documents directory.
func DefaultDocumentsRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", cserrors.ErrDocumentsNotFound, err)
	}
	return filepath.Join(home, "Documents"), nil
}
