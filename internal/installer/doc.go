// Package installer resolves the environment for a captainhook run and
// delegates hook installation to the captainhook executable.
//
// Resolution produces a [Plan] with exactly one terminal action: install,
// or one of the skip reasons (disabled, CI, worktree, missing executable,
// missing configuration). Skips are soft by design: a bridge called from a
// package manager's lifecycle scripts must never break dependency
// installation because hooks could not be set up. Only two conditions are
// fatal: no git directory anywhere above the project, and a child process
// that cannot be started.
//
// The actual installation is one child process:
//
//	captainhook install [--ansi|--no-ansi] --no-interaction [-f|-s] \
//	    -c <config> -g <gitdir>
//
// run with the parent's stdin, stdout and stderr attached, so captainhook's
// own output and progress reach the user unfiltered. A non-zero exit is
// reported as a warning and otherwise ignored.
package installer
