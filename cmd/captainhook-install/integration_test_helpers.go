//go:build integration

package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/captainhook-go/installer/internal/config"
	"github.com/captainhook-go/installer/internal/log"
	"github.com/captainhook-go/installer/internal/output"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// runGit runs a git command in dir and fails the test on error.
func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

// setupProjectRepo turns dir into a real git repository with an
// initial commit and returns its resolved path.
func setupProjectRepo(t *testing.T, dir string) string {
	t.Helper()

	dir = resolvePath(t, dir)
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test User")
	runGit(t, dir, "config", "commit.gpgsign", "false")

	if err := os.WriteFile(filepath.Join(dir, "composer.json"), []byte("{}\n"), 0644); err != nil {
		t.Fatalf("failed to write composer.json: %v", err)
	}
	runGit(t, dir, "add", "composer.json")
	runGit(t, dir, "commit", "-m", "Initial commit")

	return dir
}

// installCaptainhook writes a fake captainhook executable under
// vendor/bin. It answers --version, records any other invocation in
// argsFile (one argument per line) and exits with exitCode.
func installCaptainhook(t *testing.T, projectDir, argsFile string, exitCode int) {
	t.Helper()

	binDir := filepath.Join(projectDir, "vendor", "bin")
	if err := os.MkdirAll(binDir, 0755); err != nil {
		t.Fatalf("failed to create bin dir: %v", err)
	}
	script := fmt.Sprintf(`#!/bin/sh
if [ "$1" = "--version" ]; then
    echo "CaptainHook 5.25.2"
    exit 0
fi
printf '%%s\n' "$@" > %q
exit %d
`, argsFile, exitCode)
	if err := os.WriteFile(filepath.Join(binDir, "captainhook"), []byte(script), 0755); err != nil {
		t.Fatalf("failed to write captainhook script: %v", err)
	}
}

// writeProjectConfig writes a minimal valid captainhook.json.
func writeProjectConfig(t *testing.T, projectDir string) {
	t.Helper()
	content := `{"pre-commit":{"enabled":true,"actions":[]}}`
	if err := os.WriteFile(filepath.Join(projectDir, "captainhook.json"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write captainhook.json: %v", err)
	}
}

// clearInstallerEnv unsets every environment variable the installer
// reacts to, so runner environments (CI!) don't flip test outcomes.
func clearInstallerEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"CI",
		config.EnvDisable,
		config.EnvForceInstall,
		config.EnvConfig,
		config.EnvExec,
		config.EnvBinDir,
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

// resetFlags clears the global flag state between tests.
func resetFlags(t *testing.T) {
	t.Helper()
	reset := func() {
		configPath, execPath, binDir, gitDir = "", "", "", ""
		forceInstall, ansiOn, ansiOff = false, false, false
		verbose, quiet = false, false
	}
	reset()
	t.Cleanup(reset)
}

// testContext returns a context carrying settings, a logger and a
// printer whose outputs are captured in the returned buffers.
func testContext(t *testing.T, settings config.Settings) (context.Context, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, logs bytes.Buffer
	ctx := context.Background()
	ctx = log.WithLogger(ctx, log.New(&logs, false, false))
	ctx = output.WithPrinter(ctx, &out)
	ctx = config.WithSettings(ctx, settings)
	return ctx, &out, &logs
}
