package main

import (
	"context"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/colorprofile"

	"github.com/captainhook-go/installer/internal/config"
	"github.com/captainhook-go/installer/internal/installer"
	"github.com/captainhook-go/installer/internal/log"
	"github.com/captainhook-go/installer/internal/output"
	"github.com/captainhook-go/installer/internal/ui/styles"
)

type installOptions struct {
	dryRun  bool
	copyCmd bool
}

// runInstall prepares and executes the hook installation. Skip
// conditions return nil so a surrounding dependency install keeps
// going; only a missing git repository and a spawn failure are errors.
func runInstall(ctx context.Context, workDir string, opts installOptions) error {
	logger := log.FromContext(ctx)

	settings := config.FromContext(ctx).With(flagOverrides())

	plan, err := installer.Prepare(ctx, installer.Options{
		WorkDir:  workDir,
		Settings: settings,
		Ansi:     ansiEnabled(),
		GitDir:   gitDir,
	})
	if err != nil {
		return err
	}

	if plan.Action != installer.ActionInstall {
		logger.Println(plan.Reason)
		if plan.Hint != "" {
			logger.Println(styles.Hint(plan.Hint))
		}
		for _, name := range plan.Suggestions {
			logger.Printf("  similar executable: %s\n", name)
		}
		return nil
	}

	if opts.dryRun {
		line := plan.CommandLine()
		output.FromContext(ctx).Println(line)
		if opts.copyCmd {
			if err := clipboard.WriteAll(line); err != nil {
				logger.Printf("Warning: could not copy command to clipboard: %v\n", err)
			} else {
				logger.Println("Command copied to clipboard")
			}
		}
		return nil
	}

	code, err := installer.Run(ctx, plan)
	if err != nil {
		return err
	}
	if code != 0 {
		logger.Printf("Warning: captainhook install exited with status %d\n", code)
	}
	return nil
}

// flagOverrides folds command line flags into the loaded settings.
func flagOverrides() config.Overrides {
	o := config.Overrides{
		Config: configPath,
		Exec:   execPath,
		BinDir: binDir,
	}
	if forceInstall {
		force := true
		o.ForceInstall = &force
	}
	return o
}

// ansiEnabled resolves --ansi/--no-ansi, falling back to terminal
// detection on stdout.
func ansiEnabled() bool {
	if ansiOn {
		return true
	}
	if ansiOff {
		return false
	}
	p := colorprofile.Detect(os.Stdout, os.Environ())
	return p != colorprofile.NoTTY && p != colorprofile.Ascii
}
