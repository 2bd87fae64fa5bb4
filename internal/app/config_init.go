package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfigYAML = `# tric configuration
project: tric
executor: compose
compose_command:
  - docker
  - compose
compose_files: []
# docker_host defaults to $DOCKER_HOST, then unix:///var/run/docker.sock
# docker_host: unix:///var/run/docker.sock
`

// InitializeConfig writes the default configuration to path and returns it.
// An existing file is left untouched.
func InitializeConfig(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config %q already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat config %q: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}

	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o600); err != nil {
		return "", fmt.Errorf("write config %q: %w", path, err)
	}

	return path, nil
}
