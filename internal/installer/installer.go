package installer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/captainhook-go/installer/internal/config"
	"github.com/captainhook-go/installer/internal/git"
	"github.com/captainhook-go/installer/internal/log"
)

// Action is the terminal outcome of environment resolution.
type Action int

const (
	// ActionInstall means everything resolved and the executable can run.
	ActionInstall Action = iota
	// ActionDisabled means the bridge is switched off via settings or env.
	ActionDisabled
	// ActionCI means a CI environment was detected.
	ActionCI
	// ActionWorktree means the project is a linked worktree checkout.
	ActionWorktree
	// ActionNoExecutable means the captainhook binary is missing.
	ActionNoExecutable
	// ActionNoConfig means the captainhook configuration file is missing.
	ActionNoConfig
)

// Plan is the resolved outcome of environment detection. For skip actions
// only Reason (and possibly Hint/Suggestions) are meaningful; for
// ActionInstall the executable, paths and flag choices are fully resolved.
type Plan struct {
	Action Action

	// Reason explains a skip in one user-facing line.
	Reason string
	// Hint optionally tells the user how to fix a skip.
	Hint string
	// Suggestions holds near-matching binary names when the executable
	// is missing.
	Suggestions []string

	// WorkDir is the project directory the child runs in.
	WorkDir string
	// Executable is the resolved captainhook binary path.
	Executable string
	// ConfigPath is the resolved captainhook configuration path.
	ConfigPath string
	// GitDir is the resolved git directory passed via -g.
	GitDir string
	// Ansi selects --ansi over --no-ansi.
	Ansi bool
	// Force selects -f (overwrite hooks) over -s (skip existing).
	Force bool
}

// Options carries the inputs for Prepare.
type Options struct {
	// WorkDir is the project directory (usually the process working
	// directory); relative settings paths resolve against it.
	WorkDir string
	// Settings are the effective bridge settings.
	Settings config.Settings
	// Ansi mirrors the bridge's own color decision into the child.
	Ansi bool
	// GitDir, when non-empty, bypasses discovery.
	GitDir string
}

// Prepare resolves the environment into a Plan. The returned error is
// fatal (no git directory, unreadable paths); every recoverable condition
// becomes a skip Plan instead.
func Prepare(ctx context.Context, opts Options) (*Plan, error) {
	logger := log.FromContext(ctx)
	cfg := opts.Settings

	plan := &Plan{
		WorkDir: opts.WorkDir,
		Ansi:    opts.Ansi,
		Force:   cfg.ForceInstall,
	}

	if cfg.Disable {
		plan.Action = ActionDisabled
		plan.Reason = "hook installation is disabled"
		return plan, nil
	}

	if config.EnvTruthy("CI") {
		plan.Action = ActionCI
		plan.Reason = "CI environment detected, skipping hook installation"
		return plan, nil
	}

	dir, err := resolveGitDir(ctx, opts)
	if err != nil {
		if errors.Is(err, git.ErrNotFound) {
			return nil, fmt.Errorf("no .git directory found above %s: captainhook needs a git repository to install hooks into", opts.WorkDir)
		}
		return nil, err
	}
	plan.GitDir = dir.Path

	if dir.Worktree {
		plan.Action = ActionWorktree
		plan.Reason = "git worktree detected, skipping hook installation"
		plan.Hint = "hooks live in the main repository, run the install there"
		logger.Debug("worktree pointer resolved", "root", dir.Root, "target", dir.Path)
		return plan, nil
	}

	plan.Executable = resolvePath(opts.WorkDir, cfg.ExecutablePath())
	if !fileExists(plan.Executable) {
		plan.Action = ActionNoExecutable
		plan.Reason = fmt.Sprintf("captainhook executable not found at %s", plan.Executable)
		plan.Hint = "install captainhook, or point the exec setting (or CAPTAINHOOK_EXEC) at your binary"
		plan.Suggestions = SuggestExecutables(resolvePath(opts.WorkDir, cfg.BinDir))
		return plan, nil
	}

	plan.ConfigPath = resolvePath(opts.WorkDir, cfg.Config)
	if !fileExists(plan.ConfigPath) {
		plan.Action = ActionNoConfig
		plan.Reason = fmt.Sprintf("captainhook configuration not found at %s", plan.ConfigPath)
		plan.Hint = "create one with 'captainhook-install init', or point the config setting (or CAPTAINHOOK_CONFIG) at it"
		return plan, nil
	}

	plan.Action = ActionInstall
	logger.Debug("install plan ready",
		"exec", plan.Executable,
		"config", plan.ConfigPath,
		"gitdir", plan.GitDir,
		"force", plan.Force,
	)
	return plan, nil
}

// InstallArgs returns the argument vector for the captainhook invocation.
// Exactly one of -f/-s is present, chosen by the force setting.
func (p *Plan) InstallArgs() []string {
	ansi := "--no-ansi"
	if p.Ansi {
		ansi = "--ansi"
	}
	force := "-s"
	if p.Force {
		force = "-f"
	}
	return []string{"install", ansi, "--no-interaction", force, "-c", p.ConfigPath, "-g", p.GitDir}
}

// CommandLine renders the full command for display and dry runs. The
// executable and path arguments are shell-quoted; flags stay literal.
func (p *Plan) CommandLine() string {
	args := p.InstallArgs()
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, shellQuote(p.Executable))
	for _, a := range args {
		switch a {
		case p.ConfigPath, p.GitDir:
			parts = append(parts, shellQuote(a))
		default:
			parts = append(parts, a)
		}
	}
	return strings.Join(parts, " ")
}

// resolveGitDir runs discovery, or validates the explicit override.
func resolveGitDir(ctx context.Context, opts Options) (*git.Dir, error) {
	if opts.GitDir != "" {
		return git.Resolve(resolvePath(opts.WorkDir, opts.GitDir))
	}
	return git.Discover(ctx, opts.WorkDir)
}

// resolvePath makes path absolute relative to the project directory.
func resolvePath(workDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(workDir, path))
}

// fileExists reports whether path is an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// shellQuote wraps s in single quotes for a POSIX shell.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}
