package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/captainhook-go/installer/internal/config"
	"github.com/captainhook-go/installer/internal/log"
	"github.com/captainhook-go/installer/internal/output"
	"github.com/captainhook-go/installer/internal/ui/prompt"
	"github.com/captainhook-go/installer/internal/ui/styles"
)

type initOptions struct {
	force         bool
	settings      bool
	noInteraction bool
}

// runInit scaffolds a starter captainhook.json and optionally the
// settings file.
func runInit(ctx context.Context, workDir string, opts initOptions) error {
	printer := output.FromContext(ctx)

	settings := config.FromContext(ctx).With(flagOverrides())
	configRel := settings.Config

	interactive := prompt.Interactive() && !opts.noInteraction

	if interactive && configPath == "" {
		res, err := prompt.Text("Path to the captainhook configuration", config.Default().Config)
		if err != nil {
			return err
		}
		if res.Cancelled {
			return errors.New("init cancelled")
		}
		if res.Value != "" {
			configRel = res.Value
		}
	}

	target := configRel
	if !filepath.IsAbs(target) {
		target = filepath.Join(workDir, target)
	}

	if _, err := os.Stat(target); err == nil && !opts.force {
		return fmt.Errorf("%s already exists, use --force to overwrite", target)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(target, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	printer.Println(styles.OK("created " + target))

	writeSettings := opts.settings
	if !writeSettings && interactive {
		res, err := prompt.Confirm("Also write " + config.SettingsFile + " with the default settings?")
		if err != nil {
			return err
		}
		writeSettings = res.Confirmed && !res.Cancelled
	}
	if writeSettings {
		path, err := config.Init(workDir, opts.force)
		if err != nil {
			log.FromContext(ctx).Printf("Warning: %v\n", err)
			return nil
		}
		printer.Println(styles.OK("created " + path))
	}

	return nil
}

// configTemplate matches the configuration 'captainhook configure'
// creates for a fresh project.
const configTemplate = `{
    "commit-msg": {
        "enabled": false,
        "actions": []
    },
    "pre-commit": {
        "enabled": false,
        "actions": []
    },
    "pre-push": {
        "enabled": false,
        "actions": []
    }
}
`
