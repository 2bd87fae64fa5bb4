package stack

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/docker/docker/pkg/stdcopy"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// DockerConfig describes how to reach the stack through the Docker Engine API.
type DockerConfig struct {
	Host    string
	Project string
}

// Service is one container of the stack as reported by the engine.
type Service struct {
	Name      string
	Container string
	Image     string
	State     string
	Status    string
}

// Running reports whether the service container is up.
func (s Service) Running() bool {
	return s.State == "running"
}

// DockerExecutor implements Executor using the Docker Engine API.
type DockerExecutor struct {
	engine  engine
	project string
	streams Streams
	log     logrus.FieldLogger
}

// NewDockerExecutor constructs a Docker-backed executor.
func NewDockerExecutor(cfg DockerConfig, streams Streams, log logrus.FieldLogger) (*DockerExecutor, error) {
	eng, err := newDockerEngine(cfg.Host)
	if err != nil {
		return nil, err
	}

	return newDockerExecutor(eng, cfg.Project, streams, log)
}

func newDockerExecutor(eng engine, project string, streams Streams, log logrus.FieldLogger) (*DockerExecutor, error) {
	if eng == nil {
		return nil, errors.New("docker engine is required")
	}
	if project == "" {
		return nil, errors.New("project is required")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &DockerExecutor{engine: eng, project: project, streams: streams, log: log}, nil
}

// Realtime runs args against the stack. Only the exec verb is supported:
// ["exec", service, command...].
func (d *DockerExecutor) Realtime(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("stack command is required")
	}
	if args[0] != "exec" {
		return fmt.Errorf("%w: %s", ErrUnsupportedVerb, args[0])
	}
	if len(args) < 3 {
		return errors.New("exec requires a service and a command")
	}

	service, command := args[1], args[2:]
	d.log.WithFields(logrus.Fields{
		"backend": "docker",
		"project": d.project,
		"service": service,
		"command": command,
	}).Debug("running stack command")

	target, err := d.runningContainer(ctx, service)
	if err != nil {
		return err
	}

	return d.exec(ctx, target.ID, command)
}

// Services lists every container of the stack, running or not.
func (d *DockerExecutor) Services(ctx context.Context) ([]Service, error) {
	containers, err := d.engine.ListContainers(ctx, d.project, true)
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}

	services := make([]Service, 0, len(containers))
	for _, c := range containers {
		services = append(services, Service{
			Name:      c.Service,
			Container: c.Name,
			Image:     c.Image,
			State:     c.State,
			Status:    c.Status,
		})
	}

	sort.Slice(services, func(i, j int) bool {
		if services[i].Name != services[j].Name {
			return services[i].Name < services[j].Name
		}
		return services[i].Container < services[j].Container
	})

	return services, nil
}

// Close cleans up Docker client resources.
func (d *DockerExecutor) Close() error {
	return d.engine.Close()
}

// runningContainer never starts anything: a stopped service is an error.
func (d *DockerExecutor) runningContainer(ctx context.Context, service string) (*stackContainer, error) {
	containers, err := d.engine.ListContainers(ctx, d.project, true)
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}

	found := false
	for i := range containers {
		if containers[i].Service != service {
			continue
		}
		found = true
		if containers[i].State == "running" {
			return &containers[i], nil
		}
	}

	if found {
		return nil, fmt.Errorf("service %q is not running", service)
	}

	return nil, fmt.Errorf("no such service: %s", service)
}

func (d *DockerExecutor) exec(ctx context.Context, containerID string, command []string) error {
	streams := d.streams.withDefaults()
	stdinFd, tty := terminalFd(streams.Stdin)

	execID, err := d.engine.ExecCreate(ctx, containerID, command, tty, streams.Stdin != nil)
	if err != nil {
		return fmt.Errorf("exec create: %w", err)
	}

	attach, err := d.engine.ExecAttach(ctx, execID, tty)
	if err != nil {
		return fmt.Errorf("exec attach: %w", err)
	}
	defer attach.Close()

	if tty {
		state, err := term.MakeRaw(stdinFd)
		if err != nil {
			return fmt.Errorf("raw terminal: %w", err)
		}
		defer func() {
			_ = term.Restore(stdinFd, state)
		}()
		d.resize(ctx, execID, streams.Stdout)
	}

	// The copy outlives the exec when stdin is an idle terminal, so it is not awaited.
	if streams.Stdin != nil {
		go func() {
			_, _ = io.Copy(attach.Writer, streams.Stdin)
			_ = attach.CloseWrite()
		}()
	} else if err := attach.CloseWrite(); err != nil {
		return fmt.Errorf("exec close stdin: %w", err)
	}

	if tty {
		_, err = io.Copy(streams.Stdout, attach.Reader)
	} else {
		_, err = stdcopy.StdCopy(streams.Stdout, streams.Stderr, attach.Reader)
	}
	if err != nil {
		return fmt.Errorf("exec copy: %w", err)
	}

	code, err := d.engine.ExecExitCode(ctx, execID)
	if err != nil {
		return fmt.Errorf("exec inspect: %w", err)
	}
	if code != 0 {
		return &ExitError{Code: code}
	}

	return nil
}

func (d *DockerExecutor) resize(ctx context.Context, execID string, out io.Writer) {
	fd, ok := terminalFd(out)
	if !ok {
		return
	}

	width, height, err := term.GetSize(fd)
	if err != nil {
		return
	}

	if err := d.engine.ExecResize(ctx, execID, uint(height), uint(width)); err != nil {
		d.log.WithError(err).Debug("resize exec")
	}
}
