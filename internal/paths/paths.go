// Package paths decides where recipebox keeps config.yaml and the catalog.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "recipebox"

// Directory overrides read from the environment.
const (
	EnvConfigDir = "RECIPEBOX_CONFIG_DIR"
	EnvDataDir   = "RECIPEBOX_DATA_DIR"
)

// lookup is swapped out by tests.
var lookup = struct {
	home   func() (string, error)
	config func() (string, error)
}{
	home:   os.UserHomeDir,
	config: os.UserConfigDir,
}

// DefaultConfigDir is where config.yaml lives when nothing overrides it:
// $XDG_CONFIG_HOME/recipebox or ~/.config/recipebox on Linux, the OS user
// config directory elsewhere.
func DefaultConfigDir() (string, error) {
	return userDir("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir is the per-user catalog location that init offers:
// $XDG_DATA_HOME/recipebox or ~/.local/share/recipebox on Linux. Other
// systems share the config directory.
func DefaultDataDir() (string, error) {
	return userDir("XDG_DATA_HOME", ".local", "share")
}

// userDir returns $xdgVar/recipebox, or ~/<under...>/recipebox when the
// variable is unset. Off Linux it is the user config directory.
func userDir(xdgVar string, under ...string) (string, error) {
	if runtime.GOOS != "linux" {
		base, err := lookup.config()
		if err != nil {
			return "", err
		}
		return filepath.Join(base, appName), nil
	}
	if xdg := os.Getenv(xdgVar); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := lookup.home()
	if err != nil {
		return "", err
	}
	parts := append([]string{home}, under...)
	return filepath.Join(append(parts, appName)...), nil
}

// ResolveConfigDir picks the --config-dir flag, then RECIPEBOX_CONFIG_DIR,
// then DefaultConfigDir.
func ResolveConfigDir(flag string) (string, error) {
	if dir := firstSet(flag, os.Getenv(EnvConfigDir)); dir != "" {
		return filepath.Abs(dir)
	}
	return DefaultConfigDir()
}

// ResolveDataDir picks the --data-dir flag, then data_dir from config.yaml,
// then RECIPEBOX_DATA_DIR, then the working directory, so a recipes.json
// already next to the caller is used in place.
func ResolveDataDir(flag, fromConfig string) (string, error) {
	if dir := firstSet(flag, fromConfig, os.Getenv(EnvDataDir)); dir != "" {
		return filepath.Abs(dir)
	}
	return os.Getwd()
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
