package stack

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// Compose labels docker attaches to every container of a compose project.
const (
	projectLabel = "com.docker.compose.project"
	serviceLabel = "com.docker.compose.service"
)

// ErrUnsupportedVerb is returned by backends that cannot run a given verb.
var ErrUnsupportedVerb = errors.New("unsupported stack verb")

// Executor runs commands against the live stack with the caller's terminal
// attached. Realtime blocks until the command exits.
type Executor interface {
	Realtime(ctx context.Context, args []string) error
}

// Streams is the terminal the stack command is attached to.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// StdStreams returns the process standard streams.
func StdStreams() Streams {
	return Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (s Streams) withDefaults() Streams {
	if s.Stdout == nil {
		s.Stdout = io.Discard
	}
	if s.Stderr == nil {
		s.Stderr = io.Discard
	}
	return s
}

// ExitError carries the exit code of a command that ran in the stack.
// Its output already reached the attached terminal.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode maps an error returned by an Executor to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return 1
}
