package git

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInstalledHooks(t *testing.T) {
	t.Parallel()

	t.Run("missing hooks dir", func(t *testing.T) {
		t.Parallel()
		hooks, err := InstalledHooks(t.TempDir())
		if err != nil {
			t.Fatalf("InstalledHooks() error = %v", err)
		}
		if len(hooks) != 0 {
			t.Errorf("InstalledHooks() = %v, want empty", hooks)
		}
	})

	t.Run("managed and unmanaged hooks", func(t *testing.T) {
		t.Parallel()

		gitDir := t.TempDir()
		hooksDir := filepath.Join(gitDir, "hooks")
		if err := os.MkdirAll(hooksDir, 0755); err != nil {
			t.Fatal(err)
		}

		write := func(name, content string) {
			t.Helper()
			if err := os.WriteFile(filepath.Join(hooksDir, name), []byte(content), 0755); err != nil {
				t.Fatal(err)
			}
		}
		write("pre-commit", "#!/bin/sh\nvendor/bin/captainhook hook:pre-commit \"$@\"\n")
		write("commit-msg", "#!/bin/sh\necho custom hook\n")
		write("pre-push.sample", "#!/bin/sh\n# sample, must be ignored\n")

		hooks, err := InstalledHooks(gitDir)
		if err != nil {
			t.Fatalf("InstalledHooks() error = %v", err)
		}
		if len(hooks) != 2 {
			t.Fatalf("InstalledHooks() returned %d hooks, want 2: %v", len(hooks), hooks)
		}

		byName := make(map[string]Hook)
		for _, h := range hooks {
			byName[h.Name] = h
		}
		if h, ok := byName["pre-commit"]; !ok || !h.Managed {
			t.Errorf("pre-commit = %+v, want managed", h)
		}
		if h, ok := byName["commit-msg"]; !ok || h.Managed {
			t.Errorf("commit-msg = %+v, want unmanaged", h)
		}
	})
}
