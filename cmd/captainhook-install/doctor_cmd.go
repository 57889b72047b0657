package main

import (
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the captainhook setup",
		Args:  cobra.NoArgs,
		Long: `Diagnose the captainhook setup without changing anything.

Checks:
- The settings file (.captainhook.toml) loads
- git is installed and a .git directory resolves (worktrees are flagged)
- The captainhook executable exists and answers --version
- The configuration exists and is valid JSON
- Which hooks are installed and which are managed by captainhook
- CI or disable switches that would skip installation

Examples:
  captainhook-install doctor
  captainhook-install doctor -c config/captainhook.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd.Context(), workDir)
		},
	}

	return cmd
}
