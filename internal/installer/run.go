package installer

import (
	"context"
	"fmt"

	"github.com/captainhook-go/installer/internal/cmd"
)

// Run launches the captainhook executable with the parent's stdio attached
// and blocks until it exits. Returns the child's exit code; a non-zero
// exit is not an error here, the caller decides how to report it. An error
// means the child never ran.
func Run(ctx context.Context, p *Plan) (int, error) {
	err := cmd.RunAttachedContext(ctx, p.WorkDir, p.Executable, p.InstallArgs()...)
	if err == nil {
		return 0, nil
	}
	if code, ok := cmd.ExitCode(err); ok {
		return code, nil
	}
	return 0, fmt.Errorf("failed to start %s: %w", p.Executable, err)
}
