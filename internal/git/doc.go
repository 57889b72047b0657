// Package git locates the git directory a project's hooks belong to.
//
// Discovery is pure filesystem work: an upward walk from the project
// directory looking for a .git directory or a .git pointer file, the same
// way git itself resolves a repository. Worktrees and submodules keep a
// pointer file ("gitdir: <target>") instead of a real .git directory; the
// pointer target is resolved and verified so callers can tell a linked
// worktree from a primary repository.
//
// # Pointer Parsing
//
// Pointer files are parsed tolerantly: only the first line matters,
// whitespace after the colon is optional, CR/LF are trimmed, and relative
// targets resolve against the directory holding the pointer file. A
// pointer whose target does not exist is reported via debug logging and
// skipped, so discovery falls through to enclosing repositories instead of
// failing on a stale worktree link.
//
// # Git CLI
//
// The few operations that consult git itself ([GitDirOf], used by doctor
// to cross-check discovery) shell out to the git CLI via [os/exec] rather
// than using Go git libraries. This is simpler, more reliable, and matches
// what the captainhook executable will see.
package git
