package main

import (
	"fmt"
	"io"
	"sync"

	"tric/cmd/tric/cmds"
	"tric/internal/app"
	"tric/internal/stack"

	"github.com/sirupsen/logrus"
)

// Application wires together config, logging and the stack executor for CLI commands.
type Application struct {
	opts    *cliOptions
	log     *logrus.Logger
	streams stack.Streams

	configMu sync.Mutex
	config   *app.Config

	executorOnce sync.Once
	executor     stack.Executor
	executorErr  error

	executorFactory ExecutorFactory
	listerFactory   ListerFactory
}

// ExecutorFactory defines how to create the stack.Executor for the configured backend.
type ExecutorFactory func(cfg *app.Config, streams stack.Streams, log logrus.FieldLogger) (stack.Executor, error)

// ListerFactory defines how to create the service lister used by the services command.
type ListerFactory func(cfg *app.Config, log logrus.FieldLogger) (cmds.ServiceLister, error)

func newApplication(opts *cliOptions, executorFactory ExecutorFactory, listerFactory ListerFactory, streams stack.Streams) *Application {
	if opts == nil {
		opts = &cliOptions{}
	}
	if executorFactory == nil {
		executorFactory = noopExecutorFactory
	}
	if listerFactory == nil {
		listerFactory = noopListerFactory
	}

	return &Application{
		opts:            opts,
		log:             newLogger(streams.Stderr),
		streams:         streams,
		executorFactory: executorFactory,
		listerFactory:   listerFactory,
	}
}

func (a *Application) ConfigPath() string {
	return a.opts.configPath
}

func (a *Application) Config() (*app.Config, error) {
	a.configMu.Lock()
	defer a.configMu.Unlock()

	if a.config != nil {
		return a.config, nil
	}

	cfg, err := app.LoadConfig(a.opts.configPath)
	if err != nil {
		return nil, err
	}

	a.log.WithFields(logrus.Fields{
		"project":  cfg.Project,
		"executor": cfg.Executor,
	}).Debug("loaded config")

	a.config = cfg
	return a.config, nil
}

func (a *Application) Executor() (stack.Executor, error) {
	a.executorOnce.Do(func() {
		cfg, err := a.Config()
		if err != nil {
			a.executorErr = err
			return
		}

		a.executor, a.executorErr = a.executorFactory(cfg, a.streams, a.log)
	})

	if a.executorErr != nil {
		return nil, a.executorErr
	}

	return a.executor, nil
}

func (a *Application) ServiceLister() (cmds.ServiceLister, error) {
	cfg, err := a.Config()
	if err != nil {
		return nil, err
	}

	return a.listerFactory(cfg, a.log)
}

// Close releases the executor when it holds resources such as a Docker client.
func (a *Application) Close() error {
	if closer, ok := a.executor.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (a *Application) setDebug(debug bool) {
	if debug {
		a.log.SetLevel(logrus.DebugLevel)
		return
	}
	a.log.SetLevel(logrus.WarnLevel)
}

func noopExecutorFactory(*app.Config, stack.Streams, logrus.FieldLogger) (stack.Executor, error) {
	return nil, fmt.Errorf("executor factory not implemented")
}

func noopListerFactory(*app.Config, logrus.FieldLogger) (cmds.ServiceLister, error) {
	return nil, fmt.Errorf("service lister factory not implemented")
}
