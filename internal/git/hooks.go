package git

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
)

// KnownHooks lists the hook names captainhook manages, in git's naming.
var KnownHooks = []string{
	"commit-msg",
	"pre-commit",
	"prepare-commit-msg",
	"post-commit",
	"pre-push",
	"post-checkout",
	"post-merge",
	"post-rewrite",
}

// Hook describes an installed hook file inside a git directory.
type Hook struct {
	Name string
	Path string

	// Managed is true when the hook file references captainhook,
	// i.e. it was (most likely) written by "captainhook install".
	Managed bool
}

// InstalledHooks scans gitDir/hooks for known hook files.
// A missing hooks directory yields an empty list, not an error.
func InstalledHooks(gitDir string) ([]Hook, error) {
	hooksDir := filepath.Join(gitDir, "hooks")
	if _, err := os.Stat(hooksDir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var hooks []Hook
	for _, name := range KnownHooks {
		path := filepath.Join(hooksDir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		hooks = append(hooks, Hook{
			Name:    name,
			Path:    path,
			Managed: isManagedHook(path),
		})
	}
	return hooks, nil
}

// isManagedHook reports whether the hook file mentions captainhook.
func isManagedHook(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return bytes.Contains(bytes.ToLower(data), []byte("captainhook"))
}
