package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Prefs holds UI preferences. Database settings never live here; see DBConfig.
type Prefs struct {
	Debug        bool
	WindowWidth  float32
	WindowHeight float32
}

// Default preference values
var DefaultPrefs = Prefs{
	Debug:        false,
	WindowWidth:  640,
	WindowHeight: 720,
}

// Load reads config.toml from the user config dir. A missing file yields the
// defaults.
func Load(appDir string) (Prefs, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return DefaultPrefs, err
	}

	return LoadFile(filepath.Join(configDir, appDir, "config.toml"))
}

func LoadFile(path string) (Prefs, error) {
	// Start with default values
	prefs := DefaultPrefs

	_, err := toml.DecodeFile(path, &prefs)
	// Disregard if file does not exist
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return DefaultPrefs, err
	}

	if prefs.WindowWidth <= 0 {
		prefs.WindowWidth = DefaultPrefs.WindowWidth
	}
	if prefs.WindowHeight <= 0 {
		prefs.WindowHeight = DefaultPrefs.WindowHeight
	}

	return prefs, nil
}

// LoadEnvFile populates the process environment from a .env file. Variables
// that are already set are left alone.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
