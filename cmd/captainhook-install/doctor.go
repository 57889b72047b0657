package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/captainhook-go/installer/internal/config"
	"github.com/captainhook-go/installer/internal/doctor"
	"github.com/captainhook-go/installer/internal/output"
	"github.com/captainhook-go/installer/internal/ui/styles"
)

// runDoctor renders the diagnostic report and returns an error when
// any check failed, so the exit status reflects the setup state.
func runDoctor(ctx context.Context, workDir string) error {
	printer := output.FromContext(ctx)

	settings := config.FromContext(ctx).With(flagOverrides())

	printer.Println("Running diagnostics...")
	printer.Println()

	report := doctor.Run(ctx, doctor.Options{
		WorkDir:  workDir,
		Settings: settings,
		GitDir:   gitDir,
	})

	for _, res := range report.Results {
		printer.Println(renderResult(res))
	}

	printer.Println()
	switch {
	case report.Failures() > 0:
		return fmt.Errorf("%d of %d checks failed", report.Failures(), len(report.Results))
	case report.Warnings() > 0:
		printer.Printf("All checks passed, %d warning(s)\n", report.Warnings())
	default:
		printer.Println("All checks passed")
	}
	return nil
}

func renderResult(res doctor.Result) string {
	var b strings.Builder
	switch res.Status {
	case doctor.StatusWarn:
		b.WriteString(styles.Warn(res.Message))
	case doctor.StatusFail:
		b.WriteString(styles.Fail(res.Message))
	case doctor.StatusSkip:
		b.WriteString(styles.Skip(res.Message))
	default:
		b.WriteString(styles.OK(res.Message))
	}
	if res.Hint != "" {
		b.WriteString("\n  " + styles.Hint(res.Hint))
	}
	for _, d := range res.Details {
		b.WriteString("\n  • " + d)
	}
	return b.String()
}
