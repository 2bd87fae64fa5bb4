package stack

import "golang.org/x/term"

type fdHolder interface {
	Fd() uintptr
}

// terminalFd reports the descriptor behind v when it is an interactive terminal.
func terminalFd(v any) (int, bool) {
	f, ok := v.(fdHolder)
	if !ok {
		return 0, false
	}

	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}

	return fd, true
}
