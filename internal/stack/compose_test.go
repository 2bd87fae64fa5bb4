package stack

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runCall struct {
	name string
	args []string
}

type fakeRunner struct {
	calls []runCall
	err   error
}

func (f *fakeRunner) Run(_ context.Context, name string, args []string, _ Streams) error {
	f.calls = append(f.calls, runCall{name: name, args: args})
	return f.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestCompose(t *testing.T, runner Runner, cfg ComposeConfig) *ComposeExecutor {
	t.Helper()

	streams := Streams{Stdin: strings.NewReader(""), Stdout: io.Discard, Stderr: io.Discard}
	exec, err := NewComposeExecutor(cfg, runner, streams, quietLogger())
	require.NoError(t, err)
	return exec
}

func TestComposeExecutor_ExecWithoutTerminalDisablesTTY(t *testing.T) {
	runner := &fakeRunner{}
	exec := newTestCompose(t, runner, ComposeConfig{
		Command: []string{"docker", "compose"},
		Project: "tric",
		Files:   []string{"tests/stack.yml"},
	})

	require.NoError(t, exec.Realtime(context.Background(), []string{"exec", "codeception", "bash"}))

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "docker", runner.calls[0].name)
	assert.Equal(t,
		[]string{"compose", "-p", "tric", "-f", "tests/stack.yml", "exec", "-T", "codeception", "bash"},
		runner.calls[0].args)
}

func TestComposeExecutor_OtherVerbsPassThrough(t *testing.T) {
	runner := &fakeRunner{}
	exec := newTestCompose(t, runner, ComposeConfig{
		Command: []string{"docker-compose"},
		Project: "wp",
	})

	require.NoError(t, exec.Realtime(context.Background(), []string{"ps", "--all"}))

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "docker-compose", runner.calls[0].name)
	assert.Equal(t, []string{"-p", "wp", "ps", "--all"}, runner.calls[0].args)
}

func TestComposeExecutor_PropagatesRunnerError(t *testing.T) {
	want := &ExitError{Code: 130}
	runner := &fakeRunner{err: want}
	exec := newTestCompose(t, runner, ComposeConfig{Command: []string{"docker", "compose"}, Project: "tric"})

	err := exec.Realtime(context.Background(), []string{"exec", "db", "bash"})
	assert.Same(t, want, err)
	assert.Len(t, runner.calls, 1)
}

func TestNewComposeExecutor_RequiresCommand(t *testing.T) {
	_, err := NewComposeExecutor(ComposeConfig{Project: "tric"}, &fakeRunner{}, Streams{}, nil)
	assert.Error(t, err)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 7, ExitCode(&ExitError{Code: 7}))
	assert.Equal(t, 3, ExitCode(errors.Join(errors.New("context"), &ExitError{Code: 3})))
	assert.Equal(t, 1, ExitCode(errors.New("boom")))
}
