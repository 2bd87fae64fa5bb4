package main

import (
	"fmt"

	"tric/cmd/tric/cmds"
	"tric/internal/app"
	"tric/internal/stack"

	"github.com/sirupsen/logrus"
)

// stackExecutorFactory builds the executor for the configured backend.
func stackExecutorFactory(cfg *app.Config, streams stack.Streams, log logrus.FieldLogger) (stack.Executor, error) {
	switch cfg.Executor {
	case app.ExecutorDocker:
		executor, err := stack.NewDockerExecutor(stack.DockerConfig{
			Host:    cfg.DockerHost,
			Project: cfg.Project,
		}, streams, log)
		if err != nil {
			return nil, fmt.Errorf("init docker executor: %w", err)
		}
		return executor, nil
	case app.ExecutorCompose:
		executor, err := stack.NewComposeExecutor(stack.ComposeConfig{
			Command: cfg.ComposeCommand,
			Project: cfg.Project,
			Files:   cfg.ComposeFiles,
		}, stack.OSRunner{}, streams, log)
		if err != nil {
			return nil, fmt.Errorf("init compose executor: %w", err)
		}
		return executor, nil
	default:
		return nil, fmt.Errorf("unknown executor %q", cfg.Executor)
	}
}

// dockerListerFactory lists services through the Docker Engine whatever the executor backend.
func dockerListerFactory(cfg *app.Config, log logrus.FieldLogger) (cmds.ServiceLister, error) {
	lister, err := stack.NewDockerExecutor(stack.DockerConfig{
		Host:    cfg.DockerHost,
		Project: cfg.Project,
	}, stack.Streams{}, log)
	if err != nil {
		return nil, fmt.Errorf("init docker executor: %w", err)
	}

	return lister, nil
}
