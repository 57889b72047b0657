// Package doctor provides diagnostic checks for a captainhook setup.
//
// The doctor package inspects everything the installer depends on and
// reports one [Result] per check:
//
//   - Settings: .captainhook.toml is absent (defaults), loaded, or invalid.
//
//   - Git: the git binary is on PATH, a .git directory resolves from the
//     working directory (worktrees are flagged), and git's own view of
//     the git directory agrees with ours.
//
//   - Executable and configuration: the captainhook executable exists and
//     answers --version, and captainhook.json exists and is valid JSON.
//
//   - Hooks: which hook files are installed in <gitdir>/hooks and which
//     of them are managed by captainhook.
//
//   - Environment: CI or disable switches that would skip installation.
//
// All checks are read-only. Rendering is left to the caller; the report
// only carries statuses, messages and hints.
//
// # Usage
//
//	report := doctor.Run(ctx, doctor.Options{WorkDir: dir, Settings: cfg})
//	for _, res := range report.Results {
//		// render res.Status, res.Message, res.Hint, res.Details
//	}
//	if report.Failures() > 0 {
//		// exit non-zero
//	}
package doctor
