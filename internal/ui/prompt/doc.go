// Package prompt provides simple interactive prompts.
//
// This package contains the standalone prompts used by the init
// command: a yes/no confirmation and a single-line text input. The
// TUI renders to stderr so stdout stays clean for lifecycle scripts
// that capture it.
//
// Available prompts:
//   - [Confirm]: Yes/No confirmation prompt, defaulting to no
//   - [Text]: Single-line text input with a placeholder
//
// Use [Interactive] to decide whether prompting makes sense at all;
// composer runs hook scripts without a TTY more often than not.
package prompt
