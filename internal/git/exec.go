package git

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/captainhook-go/installer/internal/cmd"
)

// ErrGitNotFound indicates git is not installed or not in PATH.
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// CheckGit verifies that git is available in PATH.
func CheckGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return ErrGitNotFound
	}
	return nil
}

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// outputGit executes a git command with context support and verbose
// logging, returning stdout.
func outputGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return cmd.OutputContext(ctx, "", "git", gitArgs(dir, args)...)
}

// Version returns the installed git version, e.g. "2.47.1".
func Version(ctx context.Context) (string, error) {
	out, err := outputGit(ctx, "", "--version")
	if err != nil {
		return "", fmt.Errorf("git --version: %w", err)
	}
	version := strings.TrimSpace(string(out))
	version = strings.TrimPrefix(version, "git version ")
	return version, nil
}

// GitDirOf asks git itself for the git directory of the repository
// enclosing dir. Used to cross-check filesystem discovery.
func GitDirOf(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "rev-parse", "--git-dir")
	if err != nil {
		return "", fmt.Errorf("git rev-parse --git-dir: %w", err)
	}
	path := strings.TrimSpace(string(out))
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	return filepath.Clean(path), nil
}
