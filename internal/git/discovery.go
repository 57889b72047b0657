package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/captainhook-go/installer/internal/log"
)

// ErrNotFound indicates no .git directory was found anywhere between the
// start directory and the filesystem root.
var ErrNotFound = errors.New("no .git directory found")

// Dir describes a resolved git directory.
type Dir struct {
	// Path is the git directory itself: "<root>/.git" for a primary
	// repository, the pointer target for a linked worktree.
	Path string

	// Root is the directory whose .git entry concluded the search.
	Root string

	// Worktree is true when the .git entry was a pointer file whose
	// target exists (linked worktree or submodule checkout).
	Worktree bool
}

// Discover walks upward from start until it finds a .git directory or a
// .git pointer file with an existing target. Returns ErrNotFound when the
// filesystem root is reached without a match.
func Discover(ctx context.Context, start string) (*Dir, error) {
	logger := log.FromContext(ctx)

	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("resolve start directory: %w", err)
	}

	for {
		entry := filepath.Join(dir, ".git")
		info, err := os.Stat(entry)
		switch {
		case err == nil && info.IsDir():
			logger.Debug("found git directory", "path", entry)
			return &Dir{Path: entry, Root: dir}, nil
		case err == nil && info.Mode().IsRegular():
			target, perr := pointerTarget(dir, entry)
			if perr != nil {
				// Stale or malformed worktree link; keep walking so an
				// enclosing repository can still match.
				logger.Debug("ignoring .git pointer file", "path", entry, "reason", perr)
			} else {
				logger.Debug("found worktree pointer", "path", entry, "target", target)
				return &Dir{Path: target, Root: dir, Worktree: true}, nil
			}
		case err != nil && !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("stat %s: %w", entry, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, ErrNotFound
		}
		dir = parent
	}
}

// Resolve validates an explicitly given git directory, bypassing discovery.
func Resolve(path string) (*Dir, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve git directory: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("git directory %s: %w", abs, ErrNotFound)
		}
		return nil, fmt.Errorf("stat %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("git directory %s is not a directory", abs)
	}
	return &Dir{Path: abs, Root: filepath.Dir(abs)}, nil
}

// pointerTarget reads a .git pointer file and resolves its target path.
// The target must be an existing directory for the pointer to count.
func pointerTarget(dir, gitFile string) (string, error) {
	content, err := os.ReadFile(gitFile)
	if err != nil {
		return "", fmt.Errorf("read pointer file: %w", err)
	}

	target, err := parsePointer(string(content))
	if err != nil {
		return "", err
	}

	// Relative targets are relative to the directory holding the pointer.
	if !filepath.IsAbs(target) {
		target = filepath.Join(dir, target)
	}
	target = filepath.Clean(target)

	info, err := os.Stat(target)
	if err != nil {
		return "", fmt.Errorf("gitdir target %s: %w", target, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("gitdir target %s is not a directory", target)
	}
	return target, nil
}

// parsePointer extracts the gitdir target from pointer file contents.
// Only the first line is considered. The path may contain any characters;
// whitespace around it is trimmed.
func parsePointer(content string) (string, error) {
	line := content
	if idx := strings.IndexAny(line, "\r\n"); idx != -1 {
		line = line[:idx]
	}
	line = strings.TrimSpace(line)

	if !strings.HasPrefix(line, "gitdir:") {
		return "", fmt.Errorf("invalid pointer format: expected 'gitdir: <path>', got %q", line)
	}
	target := strings.TrimSpace(strings.TrimPrefix(line, "gitdir:"))
	if target == "" {
		return "", errors.New("invalid pointer format: empty gitdir target")
	}
	return target, nil
}
