package main

import (
	"github.com/spf13/cobra"
)

func newInstallCmd() *cobra.Command {
	var opts installOptions

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the configured git hooks",
		Args:  cobra.NoArgs,
		Long: `Install the captainhook git hooks into the enclosing repository.

This is the same operation the bare 'captainhook-install' performs;
the subcommand adds a dry-run mode for inspecting the generated
captainhook invocation.`,
		Example: `  captainhook-install install
  captainhook-install install --dry-run          # print instead of running
  captainhook-install install --dry-run --copy   # and copy to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd.Context(), workDir, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "Print the captainhook command line instead of running it")
	cmd.Flags().BoolVar(&opts.copyCmd, "copy", false, "Copy the printed command line to the clipboard (with --dry-run)")

	return cmd
}
