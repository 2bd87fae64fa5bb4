package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"tric/cmd/tric/cmds"
	"tric/internal/stack"
)

func main() {
	os.Exit(reportError(os.Stderr, Execute()))
}

// reportError prints err and returns the process exit code. A stack command
// already wrote its own output, so only its code is forwarded.
func reportError(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	var exitErr *stack.ExitError
	if !errors.As(err, &exitErr) {
		styles := cmds.NewStyles(w)
		_, _ = fmt.Fprintf(w, "%s %v\n", styles.Error.Render("error:"), err)
	}

	return stack.ExitCode(err)
}
