package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeSettings writes a settings file into dir and returns dir.
func writeSettings(t *testing.T, dir, content string) string {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write settings file: %v", err)
	}
	return dir
}

// clearEnv unsets all bridge environment variables for the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvDisable, EnvForceInstall, EnvConfig, EnvExec, EnvBinDir} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Config != "captainhook.json" {
		t.Errorf("Config = %q, want %q", cfg.Config, "captainhook.json")
	}
	if want := filepath.Join("vendor", "bin"); cfg.BinDir != want {
		t.Errorf("BinDir = %q, want %q", cfg.BinDir, want)
	}
	if cfg.Disable || cfg.ForceInstall {
		t.Errorf("Disable = %v, ForceInstall = %v, want false/false", cfg.Disable, cfg.ForceInstall)
	}
	if want := filepath.Join("vendor", "bin", "captainhook"); cfg.ExecutablePath() != want {
		t.Errorf("ExecutablePath() = %q, want %q", cfg.ExecutablePath(), want)
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	dir := writeSettings(t, t.TempDir(), `
config = "hooks/captainhook.json"
exec = "tools/captainhook"
disable = true
force_install = true
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Config != "hooks/captainhook.json" {
		t.Errorf("Config = %q, want %q", cfg.Config, "hooks/captainhook.json")
	}
	if cfg.Exec != "tools/captainhook" {
		t.Errorf("Exec = %q, want %q", cfg.Exec, "tools/captainhook")
	}
	if cfg.ExecutablePath() != "tools/captainhook" {
		t.Errorf("ExecutablePath() = %q, want exec override", cfg.ExecutablePath())
	}
	if !cfg.Disable {
		t.Error("Disable = false, want true")
	}
	if !cfg.ForceInstall {
		t.Error("ForceInstall = false, want true")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	clearEnv(t)

	dir := writeSettings(t, t.TempDir(), `config = [not toml`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Load() = nil error for invalid TOML")
	}
	if !strings.Contains(err.Error(), SettingsFile) {
		t.Errorf("Load() error = %q, want mention of %s", err, SettingsFile)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)

	dir := writeSettings(t, t.TempDir(), `
config = "from-file.json"
bin_dir = "file-bin"
`)

	t.Setenv(EnvConfig, "from-env.json")
	t.Setenv(EnvExec, "/opt/captainhook")
	t.Setenv(EnvBinDir, "env-bin")
	t.Setenv(EnvDisable, "1")
	t.Setenv(EnvForceInstall, "true")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Config != "from-env.json" {
		t.Errorf("Config = %q, want env override", cfg.Config)
	}
	if cfg.Exec != "/opt/captainhook" {
		t.Errorf("Exec = %q, want env override", cfg.Exec)
	}
	if cfg.BinDir != "env-bin" {
		t.Errorf("BinDir = %q, want env override", cfg.BinDir)
	}
	if !cfg.Disable {
		t.Error("Disable = false, want true from env")
	}
	if !cfg.ForceInstall {
		t.Error("ForceInstall = false, want true from env")
	}
}

func TestLoad_FalsyEnvLeavesFileValue(t *testing.T) {
	clearEnv(t)

	dir := writeSettings(t, t.TempDir(), `disable = true`)
	t.Setenv(EnvDisable, "false")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Disable {
		t.Error("Disable = false, want file value true (falsy env is not an un-disable)")
	}
}

func TestLoad_ExpandsHome(t *testing.T) {
	clearEnv(t)

	dir := writeSettings(t, t.TempDir(), `exec = "~/bin/captainhook"`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	if want := filepath.Join(home, "bin", "captainhook"); cfg.Exec != want {
		t.Errorf("Exec = %q, want %q", cfg.Exec, want)
	}
}

func TestEnvTruthy(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"1", true},
		{"0", false},
		{"true", true},
		{"TRUE", true},
		{"false", false},
		{"yes", true},
		{"on", true},
		{"nonsense", false},
	}

	for _, tt := range tests {
		t.Run("value "+tt.value, func(t *testing.T) {
			t.Setenv("CAPTAINHOOK_TEST_TRUTHY", tt.value)
			if tt.value == "" {
				os.Unsetenv("CAPTAINHOOK_TEST_TRUTHY")
			}
			if got := EnvTruthy("CAPTAINHOOK_TEST_TRUTHY"); got != tt.want {
				t.Errorf("EnvTruthy(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestWith(t *testing.T) {
	t.Parallel()

	force := true
	base := Default()
	got := base.With(Overrides{
		Config:       "flag.json",
		Exec:         "/flag/captainhook",
		BinDir:       "flag-bin",
		ForceInstall: &force,
	})

	if got.Config != "flag.json" || got.Exec != "/flag/captainhook" || got.BinDir != "flag-bin" {
		t.Errorf("With() = %+v, want all flag values applied", got)
	}
	if !got.ForceInstall {
		t.Error("ForceInstall = false, want true")
	}

	// empty overrides change nothing
	same := base.With(Overrides{})
	if same != base {
		t.Errorf("With(empty) = %+v, want %+v", same, base)
	}
}

func TestInit(t *testing.T) {
	t.Parallel()

	t.Run("creates file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path, err := Init(dir, false)
		if err != nil {
			t.Fatalf("Init() error = %v", err)
		}
		if path != filepath.Join(dir, SettingsFile) {
			t.Errorf("Init() path = %q", path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading created file: %v", err)
		}
		if !strings.Contains(string(data), "force_install") {
			t.Error("template should document force_install")
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		if _, err := Init(dir, false); err != nil {
			t.Fatalf("first Init() error = %v", err)
		}
		if _, err := Init(dir, false); err == nil {
			t.Error("second Init() = nil error, want already-exists error")
		}
		if _, err := Init(dir, true); err != nil {
			t.Errorf("Init(force) error = %v, want nil", err)
		}
	})
}

func TestWithSettings_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		s := Settings{Config: "custom.json"}
		ctx := WithSettings(context.Background(), s)
		if got := FromContext(ctx); got != s {
			t.Errorf("FromContext = %+v, want %+v", got, s)
		}
	})

	t.Run("fallback to defaults", func(t *testing.T) {
		t.Parallel()
		if got := FromContext(context.Background()); got != Default() {
			t.Errorf("FromContext(empty) = %+v, want defaults", got)
		}
	})
}
