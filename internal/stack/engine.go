package stack

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"
)

// stackContainer is the part of a container listing the executor needs.
type stackContainer struct {
	ID      string
	Name    string
	Service string
	Image   string
	State   string
	Status  string
}

// execAttachment is a hijacked exec connection.
type execAttachment struct {
	Reader     io.Reader
	Writer     io.Writer
	CloseWrite func() error
	Close      func()
}

// engine is the slice of the Docker Engine API used by DockerExecutor.
type engine interface {
	ListContainers(ctx context.Context, project string, all bool) ([]stackContainer, error)
	ExecCreate(ctx context.Context, containerID string, cmd []string, tty, attachStdin bool) (string, error)
	ExecAttach(ctx context.Context, execID string, tty bool) (*execAttachment, error)
	ExecResize(ctx context.Context, execID string, height, width uint) error
	ExecExitCode(ctx context.Context, execID string) (int, error)
	Close() error
}

type dockerEngine struct {
	client *client.Client
}

func newDockerEngine(host string) (*dockerEngine, error) {
	opts := []client.Opt{client.WithAPIVersionNegotiation()}
	if host != "" {
		opts = append(opts, client.WithHost(host))
	}

	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("docker client: %w", err)
	}

	return &dockerEngine{client: cli}, nil
}

func (e *dockerEngine) ListContainers(ctx context.Context, project string, all bool) ([]stackContainer, error) {
	list, err := e.client.ContainerList(ctx, container.ListOptions{
		All:     all,
		Filters: filters.NewArgs(filters.Arg("label", projectLabel+"="+project)),
	})
	if err != nil {
		return nil, err
	}

	result := make([]stackContainer, 0, len(list))
	for _, c := range list {
		name := ""
		if len(c.Names) > 0 {
			name = strings.TrimPrefix(c.Names[0], "/")
		}
		result = append(result, stackContainer{
			ID:      c.ID,
			Name:    name,
			Service: c.Labels[serviceLabel],
			Image:   c.Image,
			State:   c.State,
			Status:  c.Status,
		})
	}

	return result, nil
}

func (e *dockerEngine) ExecCreate(ctx context.Context, containerID string, cmd []string, tty, attachStdin bool) (string, error) {
	resp, err := e.client.ContainerExecCreate(ctx, containerID, container.ExecOptions{
		Cmd:          cmd,
		Tty:          tty,
		AttachStdin:  attachStdin,
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		return "", err
	}

	return resp.ID, nil
}

func (e *dockerEngine) ExecAttach(ctx context.Context, execID string, tty bool) (*execAttachment, error) {
	resp, err := e.client.ContainerExecAttach(ctx, execID, container.ExecStartOptions{Tty: tty})
	if err != nil {
		return nil, err
	}

	return &execAttachment{
		Reader:     resp.Reader,
		Writer:     resp.Conn,
		CloseWrite: resp.CloseWrite,
		Close:      resp.Close,
	}, nil
}

func (e *dockerEngine) ExecResize(ctx context.Context, execID string, height, width uint) error {
	return e.client.ContainerExecResize(ctx, execID, container.ResizeOptions{Height: height, Width: width})
}

func (e *dockerEngine) ExecExitCode(ctx context.Context, execID string) (int, error) {
	inspect, err := e.client.ContainerExecInspect(ctx, execID)
	if err != nil {
		return 0, err
	}

	return inspect.ExitCode, nil
}

func (e *dockerEngine) Close() error {
	return e.client.Close()
}
