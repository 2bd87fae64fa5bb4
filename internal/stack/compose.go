package stack

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

// ComposeConfig describes how to reach the stack through the compose CLI.
type ComposeConfig struct {
	Command []string
	Project string
	Files   []string
}

// ComposeExecutor implements Executor by passing commands to docker compose.
type ComposeExecutor struct {
	cfg     ComposeConfig
	runner  Runner
	streams Streams
	log     logrus.FieldLogger
}

// NewComposeExecutor constructs a compose-backed executor.
func NewComposeExecutor(cfg ComposeConfig, runner Runner, streams Streams, log logrus.FieldLogger) (*ComposeExecutor, error) {
	if len(cfg.Command) == 0 || cfg.Command[0] == "" {
		return nil, errors.New("compose command is required")
	}
	if runner == nil {
		runner = OSRunner{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &ComposeExecutor{cfg: cfg, runner: runner, streams: streams, log: log}, nil
}

// Realtime runs compose with args against the project, attached to the terminal.
func (c *ComposeExecutor) Realtime(ctx context.Context, args []string) error {
	argv := c.composeArgs(args)
	c.log.WithFields(logrus.Fields{
		"backend": "compose",
		"project": c.cfg.Project,
		"argv":    argv,
	}).Debug("running stack command")

	return c.runner.Run(ctx, c.cfg.Command[0], argv, c.streams)
}

func (c *ComposeExecutor) composeArgs(args []string) []string {
	argv := make([]string, 0, len(c.cfg.Command)+2+2*len(c.cfg.Files)+len(args)+1)
	argv = append(argv, c.cfg.Command[1:]...)
	if c.cfg.Project != "" {
		argv = append(argv, "-p", c.cfg.Project)
	}
	for _, file := range c.cfg.Files {
		argv = append(argv, "-f", file)
	}

	if len(args) > 0 && args[0] == "exec" {
		argv = append(argv, "exec")
		if _, tty := terminalFd(c.streams.Stdin); !tty {
			argv = append(argv, "-T")
		}
		return append(argv, args[1:]...)
	}

	return append(argv, args...)
}
