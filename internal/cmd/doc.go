// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, making command failures more informative for users. It also
// provides an attached-stdio variant used to hand the terminal over to the
// captainhook executable during hook installation.
//
// # Usage
//
//	if err := cmd.RunContext(ctx, repoDir, "git", "rev-parse", "--git-dir"); err != nil {
//	    // err contains stderr output if available
//	    return fmt.Errorf("git failed: %w", err)
//	}
//
//	// For commands that return output:
//	out, err := cmd.OutputContext(ctx, "", "captainhook", "--version")
//
//	// For commands that own the terminal (stdin/stdout/stderr inherited):
//	err := cmd.RunAttachedContext(ctx, projectDir, exe, "install", "-c", cfg)
//
// # Design Notes
//
// captainhook-install shells out to the git and captainhook CLIs rather than
// using Go libraries. This approach is simpler, more reliable, and ensures
// compatibility with user configurations (SSH keys, credential helpers,
// custom captainhook builds, etc.).
package cmd
