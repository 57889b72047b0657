package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// SettingsFile is the name of the per-project settings file.
const SettingsFile = ".captainhook.toml"

// ExecutableName is the name of the captainhook binary.
const ExecutableName = "captainhook"

// Environment variable overrides. The disable/force variables are truthy
// switches; the path variables replace the corresponding setting entirely.
const (
	EnvDisable      = "CAPTAINHOOK_DISABLE"
	EnvForceInstall = "CAPTAINHOOK_FORCE_INSTALL"
	EnvConfig       = "CAPTAINHOOK_CONFIG"
	EnvExec         = "CAPTAINHOOK_EXEC"
	EnvBinDir       = "CAPTAINHOOK_BIN_DIR"
)

// Settings holds the effective bridge configuration for one project.
type Settings struct {
	// Config is the path to the captainhook configuration file,
	// relative paths are resolved against the project directory.
	Config string `toml:"config"`

	// Exec is the path to the captainhook executable. Empty means
	// "<bin_dir>/captainhook".
	Exec string `toml:"exec"`

	// BinDir is where project binaries live (composer's bin-dir analog).
	BinDir string `toml:"bin_dir"`

	// Disable skips hook installation entirely.
	Disable bool `toml:"disable"`

	// ForceInstall passes -f (overwrite existing hooks) instead of -s
	// (skip existing hooks) to the installer.
	ForceInstall bool `toml:"force_install"`
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		Config: "captainhook.json",
		BinDir: filepath.Join("vendor", "bin"),
	}
}

// ExecutablePath returns the configured executable path, falling back to
// the captainhook binary inside BinDir.
func (s Settings) ExecutablePath() string {
	if s.Exec != "" {
		return s.Exec
	}
	return filepath.Join(s.BinDir, ExecutableName)
}

// Overrides carries flag-level settings the command layer applies on top
// of file and environment values. Nil pointers mean "not given".
type Overrides struct {
	Config       string
	Exec         string
	BinDir       string
	ForceInstall *bool
}

// With returns a copy of s with the given overrides applied.
func (s Settings) With(o Overrides) Settings {
	if o.Config != "" {
		s.Config = o.Config
	}
	if o.Exec != "" {
		s.Exec = o.Exec
	}
	if o.BinDir != "" {
		s.BinDir = o.BinDir
	}
	if o.ForceInstall != nil {
		s.ForceInstall = *o.ForceInstall
	}
	return s
}

// Load reads settings for the project at dir.
// Returns Default() if no settings file exists (no error).
// Returns an error only if the file exists but is invalid.
// Environment overrides are applied in both cases.
func Load(dir string) (Settings, error) {
	cfg := Default()

	path := filepath.Join(dir, SettingsFile)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// optional file
	case err != nil:
		return Default(), fmt.Errorf("failed to read %s: %w", SettingsFile, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("failed to parse %s: %w", SettingsFile, err)
		}
	}

	applyEnv(&cfg)

	for name, p := range map[string]*string{
		"config":  &cfg.Config,
		"exec":    &cfg.Exec,
		"bin_dir": &cfg.BinDir,
	} {
		expanded, err := expandPath(*p)
		if err != nil {
			return Default(), fmt.Errorf("expand %s: %w", name, err)
		}
		*p = expanded
	}

	if cfg.Config == "" {
		cfg.Config = Default().Config
	}
	if cfg.BinDir == "" {
		cfg.BinDir = Default().BinDir
	}

	return cfg, nil
}

// applyEnv overlays environment variables onto cfg. Path variables replace
// values when non-empty; the disable/force switches only flip to true
// (an unset or falsy variable leaves the file setting alone, matching the
// original plugin's getenv checks).
func applyEnv(cfg *Settings) {
	if v := os.Getenv(EnvConfig); v != "" {
		cfg.Config = v
	}
	if v := os.Getenv(EnvExec); v != "" {
		cfg.Exec = v
	}
	if v := os.Getenv(EnvBinDir); v != "" {
		cfg.BinDir = v
	}
	if EnvTruthy(EnvDisable) {
		cfg.Disable = true
	}
	if EnvTruthy(EnvForceInstall) {
		cfg.ForceInstall = true
	}
}

// EnvTruthy reports whether the named environment variable is set to a
// truthy value (1, t, true, y, yes, on; case-insensitive).
func EnvTruthy(name string) bool {
	v := os.Getenv(name)
	if v == "" {
		return false
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	switch v {
	case "y", "Y", "yes", "YES", "Yes", "on", "ON", "On":
		return true
	}
	return false
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

const defaultSettings = `# captainhook-install settings
#
# All keys are optional; this file itself is optional. Environment
# variables (CAPTAINHOOK_CONFIG, CAPTAINHOOK_EXEC, CAPTAINHOOK_BIN_DIR,
# CAPTAINHOOK_DISABLE, CAPTAINHOOK_FORCE_INSTALL) override file values,
# and command-line flags override both.

# Path to the captainhook configuration file.
# Relative paths are resolved against the project directory.
# config = "captainhook.json"

# Path to the captainhook executable.
# When not set, "<bin_dir>/captainhook" is used.
# exec = "tools/captainhook"

# Directory holding project binaries (composer bin-dir analog).
# bin_dir = "vendor/bin"

# Skip hook installation entirely. Useful for repositories where hooks
# are managed some other way. CI runs are skipped automatically via the
# CI environment variable.
# disable = false

# Overwrite existing hooks (-f) instead of skipping them (-s).
# force_install = false
`

// Init creates a default settings file in dir.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(dir string, force bool) (string, error) {
	path := filepath.Join(dir, SettingsFile)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("settings file already exists: " + path)
		}
	}

	if err := os.WriteFile(path, []byte(defaultSettings), 0644); err != nil {
		return "", err
	}

	return path, nil
}
