package stack

import (
	"context"
	"errors"
	"fmt"
	osexec "os/exec"
)

// Runner starts a host process attached to the given streams.
type Runner interface {
	Run(ctx context.Context, name string, args []string, streams Streams) error
}

// OSRunner executes commands using os/exec.
type OSRunner struct{}

// Run executes name with args and waits for it. A non-zero exit is reported
// as *ExitError.
func (OSRunner) Run(ctx context.Context, name string, args []string, streams Streams) error {
	streams = streams.withDefaults()

	cmd := osexec.CommandContext(ctx, name, args...)
	cmd.Stdin = streams.Stdin
	cmd.Stdout = streams.Stdout
	cmd.Stderr = streams.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Code: exitErr.ExitCode()}
	}

	return fmt.Errorf("run %s: %w", name, err)
}
