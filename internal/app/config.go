package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	configDirEnvVar  = "TRIC_CONFIG_DIR"
	dockerHostEnvVar = "DOCKER_HOST"
	configDirName    = ".config/tric"
	configFileName   = "config.yaml"
)

// Executor backends understood by the CLI.
const (
	ExecutorCompose = "compose"
	ExecutorDocker  = "docker"
)

const (
	defaultProject    = "tric"
	defaultDockerHost = "unix:///var/run/docker.sock"
)

// Config holds application configuration loaded from YAML.
type Config struct {
	Project        string   `yaml:"project"`
	ComposeFiles   []string `yaml:"compose_files"`
	ComposeCommand []string `yaml:"compose_command"`
	Executor       string   `yaml:"executor"`
	DockerHost     string   `yaml:"docker_host"`
}

// LoadConfig loads configuration from the provided path. When path is empty the
// default location (~/.config/tric/config.yaml) is used and a missing file there
// yields the defaults. The location can be overridden with the TRIC_CONFIG_DIR
// environment variable.
func LoadConfig(path string) (*Config, error) {
	cfgPath := path
	optional := false
	if cfgPath == "" {
		var err error
		cfgPath, err = DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		optional = true
	}

	var cfg Config
	data, err := os.ReadFile(cfgPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", cfgPath, err)
		}
	case optional && errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config %q: %w", cfgPath, err)
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DefaultConfigPath returns the absolute path to the config file using the
// default config directory (~/.config/tric) unless overridden.
func DefaultConfigPath() (string, error) {
	dir, err := defaultConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, configFileName), nil
}

func defaultConfigDir() (string, error) {
	if dir := os.Getenv(configDirEnvVar); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}

	return filepath.Join(home, configDirName), nil
}

// Validate ensures the configuration contains the minimum required fields.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Project) == "" {
		problems = append(problems, "project is required")
	}

	switch c.Executor {
	case ExecutorCompose:
		if len(c.ComposeCommand) == 0 || strings.TrimSpace(c.ComposeCommand[0]) == "" {
			problems = append(problems, "compose_command is required")
		}
	case ExecutorDocker:
	default:
		problems = append(problems, fmt.Sprintf("executor must be %q or %q", ExecutorCompose, ExecutorDocker))
	}

	for i, file := range c.ComposeFiles {
		if strings.TrimSpace(file) == "" {
			problems = append(problems, fmt.Sprintf("compose_files[%d] is empty", i))
		}
	}

	if strings.TrimSpace(c.DockerHost) == "" {
		problems = append(problems, "docker_host is required")
	}

	if len(problems) > 0 {
		return errors.New("invalid config: " + strings.Join(problems, "; "))
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Project) == "" {
		cfg.Project = defaultProject
	}

	if len(cfg.ComposeCommand) == 0 {
		cfg.ComposeCommand = []string{"docker", "compose"}
	}

	if strings.TrimSpace(cfg.Executor) == "" {
		cfg.Executor = ExecutorCompose
	}

	if strings.TrimSpace(cfg.DockerHost) == "" {
		cfg.DockerHost = defaultDockerHost
		if host := os.Getenv(dockerHostEnvVar); host != "" {
			cfg.DockerHost = host
		}
	}
}
