// Package config handles loading and validation of captainhook-install
// settings.
//
// Settings are read from a .captainhook.toml file in the project directory
// with environment variable overrides, mirroring the extra-block the
// original composer plugin reads from composer.json.
//
// # Settings Sources (highest priority first)
//
//   - Command-line flags (applied by the command layer via Overrides)
//   - CAPTAINHOOK_CONFIG, CAPTAINHOOK_EXEC, CAPTAINHOOK_BIN_DIR env vars
//   - CAPTAINHOOK_DISABLE, CAPTAINHOOK_FORCE_INSTALL env vars (truthy only)
//   - .captainhook.toml settings
//   - Default values
//
// # Key Settings
//
//   - config: path to the captainhook configuration (default: "captainhook.json")
//   - exec: path to the captainhook executable (default: "<bin_dir>/captainhook")
//   - bin_dir: directory holding project binaries (default: "vendor/bin")
//   - disable: skip hook installation entirely (default: false)
//   - force_install: pass -f instead of -s to the installer (default: false)
//
// Relative paths are resolved against the project directory by the caller;
// ~ expands to the user's home directory.
//
// # Paths
//
// The settings file is optional. A missing file yields defaults; a file
// that exists but fails to parse is an error, so typos never degrade
// silently into a skipped installation.
package config
