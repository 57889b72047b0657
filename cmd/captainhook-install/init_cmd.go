package main

import (
	"github.com/spf13/cobra"

	"github.com/captainhook-go/installer/internal/config"
)

func newInitCmd() *cobra.Command {
	var opts initOptions

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter captainhook configuration",
		Args:  cobra.NoArgs,
		Long: `Create a starter captainhook.json in the current project.

On a terminal, init asks for the configuration path and whether to
write a ` + config.SettingsFile + ` settings file alongside it. Use
--no-interaction for scripted setups.`,
		Example: `  captainhook-install init
  captainhook-install init --settings --no-interaction
  captainhook-install init -c config/captainhook.json --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd.Context(), workDir, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite existing files")
	cmd.Flags().BoolVar(&opts.settings, "settings", false, "Also write "+config.SettingsFile+" with the default settings")
	cmd.Flags().BoolVar(&opts.noInteraction, "no-interaction", false, "Never prompt, use flags and defaults")

	return cmd
}
