package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	cserrors "github.com/mwhitfield/codsync/internal/errors"
)

// Config holds the tool's persisted settings.
//
// All fields are optional overrides. An empty value means "use the
// platform default", so a zero Config is always valid. The selected game
// path lives here rather than in process-global state; callers load the
// config and thread the values into each operation explicitly.
type Config struct {
	Game    Game    `toml:"game"`
	Sync    Sync    `toml:"sync"`
	Machine Machine `toml:"machine"`
}

type Game struct {
	// InstallPath overrides the default Steam installation directory.
	InstallPath string `toml:"install_path"`

	// DocumentsRoot overrides the platform documents directory used to
	// locate per-profile config files.
	DocumentsRoot string `toml:"documents_root"`
}

type Sync struct {
	// Categories overrides the default list of setting-name tokens
	// selected for export.
	Categories []string `toml:"categories"`
}

type Machine struct {
	// ID identifies this machine in the operation log. Generated on
	// first save.
	ID string `toml:"machine_id"`
}

// ConfigDir returns the directory holding the tool's configuration.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting user config directory: %w", err)
	}
	return filepath.Join(base, "codsync"), nil
}

// ConfigPath returns the path of the tool's config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the tool configuration from disk.
// A missing config file is not an error; a zero config is returned.
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	config := &Config{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("%w: %v", cserrors.ErrInvalidConfig, err)
	}

	return config, nil
}

// Save writes the tool configuration to disk, creating the config
// directory if needed. A machine id is generated on first save.
func Save(config *Config) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}

	if config.Machine.ID == "" {
		config.Machine.ID = uuid.New().String()
	}

	if err := writeTOML(configPath, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

// writeTOML encodes the config to its file, creating the codsync config
// directory on first save.
func writeTOML(configPath string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return err
	}

	file, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(config)
}
