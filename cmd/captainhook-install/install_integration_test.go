//go:build integration

package main

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/captainhook-go/installer/internal/config"
)

// TestInstall_RunsCaptainhook tests the full install path.
//
// Scenario: composer post-install-cmd runs `captainhook-install` in a
// project with a git repo, vendor/bin/captainhook and captainhook.json.
// Expected: captainhook is executed with the documented arguments.
func TestInstall_RunsCaptainhook(t *testing.T) {
	// Not parallel - modifies global flag state and env
	clearInstallerEnv(t)
	resetFlags(t)

	projectDir := setupProjectRepo(t, t.TempDir())
	argsFile := filepath.Join(projectDir, "captainhook-args.txt")
	installCaptainhook(t, projectDir, argsFile, 0)
	writeProjectConfig(t, projectDir)

	ansiOff = true
	ctx, _, logs := testContext(t, config.Default())

	if err := runInstall(ctx, projectDir, installOptions{}); err != nil {
		t.Fatalf("runInstall() error = %v\nlogs:\n%s", err, logs)
	}

	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("captainhook was not executed: %v", err)
	}
	got := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	want := []string{
		"install",
		"--no-ansi",
		"--no-interaction",
		"-s",
		"-c", filepath.Join(projectDir, "captainhook.json"),
		"-g", filepath.Join(projectDir, ".git"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("captainhook args = %v, want %v", got, want)
	}
}

// TestInstall_ForceInstall tests that -f reaches the child.
func TestInstall_ForceInstall(t *testing.T) {
	clearInstallerEnv(t)
	resetFlags(t)

	projectDir := setupProjectRepo(t, t.TempDir())
	argsFile := filepath.Join(projectDir, "captainhook-args.txt")
	installCaptainhook(t, projectDir, argsFile, 0)
	writeProjectConfig(t, projectDir)

	ansiOff = true
	forceInstall = true
	ctx, _, _ := testContext(t, config.Default())

	if err := runInstall(ctx, projectDir, installOptions{}); err != nil {
		t.Fatalf("runInstall() error = %v", err)
	}

	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("captainhook was not executed: %v", err)
	}
	if !strings.Contains(string(data), "-f") || strings.Contains(string(data), "-s") {
		t.Errorf("captainhook args = %q, want -f instead of -s", data)
	}
}

// TestInstall_NonZeroExitIsWarning tests exit status relaying.
//
// Scenario: captainhook install exits 3.
// Expected: a warning is logged and the bridge still succeeds, so the
// surrounding composer run is not broken.
func TestInstall_NonZeroExitIsWarning(t *testing.T) {
	clearInstallerEnv(t)
	resetFlags(t)

	projectDir := setupProjectRepo(t, t.TempDir())
	argsFile := filepath.Join(projectDir, "captainhook-args.txt")
	installCaptainhook(t, projectDir, argsFile, 3)
	writeProjectConfig(t, projectDir)

	ctx, _, logs := testContext(t, config.Default())

	if err := runInstall(ctx, projectDir, installOptions{}); err != nil {
		t.Fatalf("runInstall() error = %v, want nil for a non-zero child exit", err)
	}
	if !strings.Contains(logs.String(), "exited with status 3") {
		t.Errorf("logs = %q, want exit status warning", logs.String())
	}
}

// TestInstall_NoGitDir tests the one hard failure.
func TestInstall_NoGitDir(t *testing.T) {
	clearInstallerEnv(t)
	resetFlags(t)

	dir := t.TempDir()
	ctx, _, _ := testContext(t, config.Default())

	err := runInstall(ctx, dir, installOptions{})
	if err == nil {
		t.Fatal("runInstall() = nil error without a git repository, want error")
	}
	if !strings.Contains(err.Error(), ".git") {
		t.Errorf("error = %q, want mention of .git", err)
	}
}

// TestInstall_WorktreeSkips tests the worktree soft skip against a
// worktree created by real git.
func TestInstall_WorktreeSkips(t *testing.T) {
	clearInstallerEnv(t)
	resetFlags(t)

	projectDir := setupProjectRepo(t, t.TempDir())
	wtDir := filepath.Join(resolvePath(t, t.TempDir()), "feature")
	runGit(t, projectDir, "worktree", "add", "-b", "feature", wtDir)

	ctx, _, logs := testContext(t, config.Default())

	if err := runInstall(ctx, wtDir, installOptions{}); err != nil {
		t.Fatalf("runInstall() error = %v, want nil for a worktree", err)
	}
	if !strings.Contains(logs.String(), "worktree") {
		t.Errorf("logs = %q, want worktree skip message", logs.String())
	}
}

// TestInstall_CISkips tests that CI short-circuits everything.
func TestInstall_CISkips(t *testing.T) {
	clearInstallerEnv(t)
	resetFlags(t)
	t.Setenv("CI", "true")

	projectDir := setupProjectRepo(t, t.TempDir())
	argsFile := filepath.Join(projectDir, "captainhook-args.txt")
	installCaptainhook(t, projectDir, argsFile, 0)
	writeProjectConfig(t, projectDir)

	ctx, _, logs := testContext(t, config.Default())

	if err := runInstall(ctx, projectDir, installOptions{}); err != nil {
		t.Fatalf("runInstall() error = %v", err)
	}
	if !strings.Contains(logs.String(), "CI environment detected") {
		t.Errorf("logs = %q, want CI skip message", logs.String())
	}
	if _, err := os.Stat(argsFile); err == nil {
		t.Error("captainhook was executed in CI, want skip")
	}
}

// TestInstall_DryRun tests that -n prints the command without running it.
func TestInstall_DryRun(t *testing.T) {
	clearInstallerEnv(t)
	resetFlags(t)

	projectDir := setupProjectRepo(t, t.TempDir())
	argsFile := filepath.Join(projectDir, "captainhook-args.txt")
	installCaptainhook(t, projectDir, argsFile, 0)
	writeProjectConfig(t, projectDir)

	ansiOff = true
	ctx, out, _ := testContext(t, config.Default())

	if err := runInstall(ctx, projectDir, installOptions{dryRun: true}); err != nil {
		t.Fatalf("runInstall() error = %v", err)
	}

	exe := filepath.Join(projectDir, "vendor", "bin", "captainhook")
	cfg := filepath.Join(projectDir, "captainhook.json")
	git := filepath.Join(projectDir, ".git")
	want := "'" + exe + "' install --no-ansi --no-interaction -s -c '" + cfg + "' -g '" + git + "'\n"
	if out.String() != want {
		t.Errorf("stdout = %q, want %q", out.String(), want)
	}
	if _, err := os.Stat(argsFile); err == nil {
		t.Error("captainhook was executed during dry-run, want print only")
	}
}

// TestInstallCmd_DryRun drives the cobra command itself.
func TestInstallCmd_DryRun(t *testing.T) {
	clearInstallerEnv(t)
	resetFlags(t)

	projectDir := setupProjectRepo(t, t.TempDir())
	installCaptainhook(t, projectDir, filepath.Join(projectDir, "captainhook-args.txt"), 0)
	writeProjectConfig(t, projectDir)

	oldWorkDir := workDir
	workDir = projectDir
	defer func() { workDir = oldWorkDir }()

	ansiOff = true
	ctx, out, _ := testContext(t, config.Default())

	cmd := newInstallCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"--dry-run"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("install command failed: %v", err)
	}
	if !strings.Contains(out.String(), "install --no-ansi --no-interaction -s") {
		t.Errorf("stdout = %q, want dry-run command line", out.String())
	}
}
