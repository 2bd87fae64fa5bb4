package cmds

import (
	"context"

	"tric/internal/app"
	"tric/internal/stack"
)

// AppProvider provides access to CLI application dependencies.
type AppProvider interface {
	Config() (*app.Config, error)
	ConfigPath() string
	Executor() (stack.Executor, error)
	ServiceLister() (ServiceLister, error)
}

// ServiceLister reports the containers of the stack.
type ServiceLister interface {
	Services(ctx context.Context) ([]stack.Service, error)
}
