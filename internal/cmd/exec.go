package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/captainhook-go/installer/internal/log"
)

// RunContext executes a command and returns stderr in the error message if
// it fails. The command is logged (with timing) when verbose is enabled.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	logger := log.FromContext(ctx)
	done := logger.Command(dir, name, args...)
	start := time.Now()

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	var stderr bytes.Buffer
	c.Stderr = &stderr

	err := c.Run()
	done(time.Since(start))
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errMsg := strings.TrimSpace(stderr.String()); errMsg != "" {
			return fmt.Errorf("%s", errMsg)
		}
		return err
	}
	return nil
}

// OutputContext executes a command and returns stdout, with stderr in the
// error if it fails.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	logger := log.FromContext(ctx)
	done := logger.Command(dir, name, args...)
	start := time.Now()

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	var stderr bytes.Buffer
	c.Stderr = &stderr

	out, err := c.Output()
	done(time.Since(start))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errMsg := strings.TrimSpace(stderr.String()); errMsg != "" {
			return nil, fmt.Errorf("%s", errMsg)
		}
		return nil, err
	}
	return out, nil
}

// RunAttachedContext executes a command with the parent's stdin, stdout and
// stderr attached directly. Nothing is captured; the child owns the
// terminal until it exits. Use ExitCode on the returned error to
// distinguish a non-zero exit from a failure to start.
func RunAttachedContext(ctx context.Context, dir, name string, args ...string) error {
	logger := log.FromContext(ctx)
	done := logger.Command(dir, name, args...)
	start := time.Now()

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	err := c.Run()
	done(time.Since(start))
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// ExitCode extracts the exit code from an error returned by one of the Run
// functions. Returns (code, true) when the command ran and exited non-zero,
// (0, false) when err is nil or the command never ran.
func ExitCode(err error) (int, bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return 0, false
}
