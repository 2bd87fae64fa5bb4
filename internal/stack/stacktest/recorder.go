// Package stacktest provides a stack.Executor double for command tests.
package stacktest

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Recorder is a test implementation of stack.Executor. It records every
// argument vector and answers with Err.
type Recorder struct {
	mu    sync.Mutex
	calls [][]string

	// Err is returned from every Realtime call.
	Err error
}

// NewRecorder creates a recorder that answers with err.
func NewRecorder(err error) *Recorder {
	return &Recorder{Err: err}
}

// Realtime records args.
func (r *Recorder) Realtime(_ context.Context, args []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, append([]string(nil), args...))
	return r.Err
}

// Calls returns a copy of the recorded argument vectors.
func (r *Recorder) Calls() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([][]string, len(r.calls))
	copy(out, r.calls)
	return out
}

// CallCount returns the number of Realtime calls.
func (r *Recorder) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.calls)
}

// String returns a string representation of the recorded calls.
func (r *Recorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Recorder: %d calls\n", len(r.calls))
	for i, call := range r.calls {
		fmt.Fprintf(&b, "  [%d] %s\n", i, strings.Join(call, " "))
	}
	return b.String()
}
