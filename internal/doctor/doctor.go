package doctor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/captainhook-go/installer/internal/cmd"
	"github.com/captainhook-go/installer/internal/config"
	"github.com/captainhook-go/installer/internal/git"
	"github.com/captainhook-go/installer/internal/installer"
)

// Options configures a doctor run.
type Options struct {
	// WorkDir is the project directory, usually the composer root.
	WorkDir string
	// Settings are the loaded project settings.
	Settings config.Settings
	// GitDir skips git directory discovery when set.
	GitDir string
}

// Run executes all diagnostic checks. Fatal conditions surface as
// failed results, never as errors, so a report is always returned.
func Run(ctx context.Context, opts Options) *Report {
	r := &Report{}

	checkSettingsFile(r, opts.WorkDir)
	haveGit := checkGitBinary(ctx, r)
	gitDir := checkGitDir(ctx, r, opts, haveGit)
	checkExecutable(ctx, r, opts)
	checkConfig(r, opts)
	checkHooks(r, gitDir)
	checkEnvironment(r, opts.Settings)

	return r
}

// checkSettingsFile reports whether .captainhook.toml is absent, loaded
// or broken.
func checkSettingsFile(r *Report, dir string) {
	path := filepath.Join(dir, config.SettingsFile)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		r.add(Result{
			Status:  StatusSkip,
			Message: fmt.Sprintf("no %s, using defaults", config.SettingsFile),
		})
		return
	}
	if _, err := config.Load(dir); err != nil {
		r.add(Result{
			Status:  StatusFail,
			Message: fmt.Sprintf("%s cannot be loaded: %v", config.SettingsFile, err),
		})
		return
	}
	r.add(Result{
		Status:  StatusOK,
		Message: fmt.Sprintf("%s loaded", config.SettingsFile),
	})
}

func checkGitBinary(ctx context.Context, r *Report) bool {
	if err := git.CheckGit(); err != nil {
		r.add(Result{
			Status:  StatusFail,
			Message: "git not found in PATH",
			Hint:    "install git (https://git-scm.com)",
		})
		return false
	}
	version, err := git.Version(ctx)
	if err != nil {
		r.add(Result{
			Status:  StatusWarn,
			Message: fmt.Sprintf("git is on PATH but --version failed: %v", err),
		})
		return true
	}
	r.add(Result{Status: StatusOK, Message: "git " + version + " on PATH"})
	return true
}

// checkGitDir resolves the git directory and returns its path, or ""
// when hooks cannot be inspected (not found, or a worktree whose hooks
// live elsewhere).
func checkGitDir(ctx context.Context, r *Report, opts Options, haveGit bool) string {
	var (
		d   *git.Dir
		err error
	)
	if opts.GitDir != "" {
		d, err = git.Resolve(opts.GitDir)
	} else {
		d, err = git.Discover(ctx, opts.WorkDir)
	}
	if errors.Is(err, git.ErrNotFound) {
		r.add(Result{
			Status:  StatusFail,
			Message: fmt.Sprintf("no .git directory found above %s", opts.WorkDir),
			Hint:    "run 'git init' or pass --git-dir",
		})
		return ""
	}
	if err != nil {
		r.add(Result{
			Status:  StatusFail,
			Message: fmt.Sprintf("git directory resolution failed: %v", err),
		})
		return ""
	}

	if d.Worktree {
		r.add(Result{
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s is a git worktree", d.Root),
			Hint:    "hooks live in the main repository, run the install there",
		})
		return ""
	}

	res := Result{Status: StatusOK, Message: "git directory at " + d.Path}
	if haveGit {
		if reported, err := git.GitDirOf(ctx, d.Root); err == nil && reported != d.Path {
			res.Status = StatusWarn
			res.Message = fmt.Sprintf("git reports %s as git directory, discovery found %s", reported, d.Path)
		}
	}
	r.add(res)
	return d.Path
}

func checkExecutable(ctx context.Context, r *Report, opts Options) {
	exe := absWithin(opts.WorkDir, opts.Settings.ExecutablePath())
	info, err := os.Stat(exe)
	if errors.Is(err, os.ErrNotExist) {
		res := Result{
			Status:  StatusFail,
			Message: fmt.Sprintf("captainhook executable not found at %s", exe),
			Hint:    "composer require --dev captainhook/captainhook",
		}
		binDir := absWithin(opts.WorkDir, opts.Settings.BinDir)
		for _, name := range installer.SuggestExecutables(binDir) {
			res.Details = append(res.Details, fmt.Sprintf("similar name in %s: %s", opts.Settings.BinDir, name))
		}
		if path, lookErr := exec.LookPath(config.ExecutableName); lookErr == nil {
			res.Details = append(res.Details,
				fmt.Sprintf("captainhook is on PATH at %s, set exec in %s to use it", path, config.SettingsFile))
		}
		r.add(res)
		return
	}
	if err != nil {
		r.add(Result{Status: StatusFail, Message: fmt.Sprintf("cannot stat %s: %v", exe, err)})
		return
	}
	if runtime.GOOS != "windows" && info.Mode()&0111 == 0 {
		r.add(Result{
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s is not executable (mode %s)", exe, info.Mode().Perm()),
			Hint:    "chmod +x " + exe,
		})
		return
	}
	out, err := cmd.OutputContext(ctx, opts.WorkDir, exe, "--version")
	if err != nil {
		r.add(Result{
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s did not answer --version: %v", exe, err),
		})
		return
	}
	r.add(Result{
		Status:  StatusOK,
		Message: fmt.Sprintf("%s (%s)", firstLine(string(out)), exe),
	})
}

func checkConfig(r *Report, opts Options) {
	path := absWithin(opts.WorkDir, opts.Settings.Config)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		r.add(Result{
			Status:  StatusFail,
			Message: fmt.Sprintf("configuration not found at %s", path),
			Hint:    "run 'captainhook-install init' to create a starter configuration",
		})
		return
	}
	if err != nil {
		r.add(Result{Status: StatusFail, Message: fmt.Sprintf("cannot read %s: %v", path, err)})
		return
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		r.add(Result{
			Status:  StatusFail,
			Message: fmt.Sprintf("%s is not valid JSON: %v", filepath.Base(path), err),
		})
		return
	}
	r.add(Result{
		Status:  StatusOK,
		Message: fmt.Sprintf("%s is valid JSON", filepath.Base(path)),
	})
}

func checkHooks(r *Report, gitDir string) {
	if gitDir == "" {
		r.add(Result{Status: StatusSkip, Message: "hook inspection skipped, no usable git directory"})
		return
	}
	hooks, err := git.InstalledHooks(gitDir)
	if err != nil {
		r.add(Result{Status: StatusWarn, Message: fmt.Sprintf("cannot inspect hooks: %v", err)})
		return
	}
	if len(hooks) == 0 {
		r.add(Result{
			Status:  StatusWarn,
			Message: "no hooks installed yet",
			Hint:    "run 'captainhook-install' (or composer install) to install them",
		})
		return
	}

	managed := 0
	details := make([]string, 0, len(hooks))
	for _, h := range hooks {
		if h.Managed {
			managed++
			details = append(details, h.Name+" (captainhook)")
		} else {
			details = append(details, h.Name+" (unmanaged)")
		}
	}
	status := StatusOK
	if managed == 0 {
		status = StatusWarn
	}
	r.add(Result{
		Status:  status,
		Message: fmt.Sprintf("%d hooks installed, %d managed by captainhook", len(hooks), managed),
		Details: details,
	})
}

func checkEnvironment(r *Report, settings config.Settings) {
	var blockers []string
	if config.EnvTruthy(config.EnvDisable) {
		blockers = append(blockers, config.EnvDisable+" is set")
	} else if settings.Disable {
		blockers = append(blockers, "disable = true in "+config.SettingsFile)
	}
	if config.EnvTruthy("CI") {
		blockers = append(blockers, "CI environment detected")
	}

	if len(blockers) == 0 {
		r.add(Result{Status: StatusOK, Message: "environment allows hook installation"})
		return
	}
	r.add(Result{
		Status:  StatusWarn,
		Message: "hook installation is currently switched off",
		Details: blockers,
	})
}

func absWithin(workDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(workDir, path)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
