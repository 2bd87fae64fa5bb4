package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultLocation(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	content := "project: wp\nexecutor: docker\ncompose_files:\n  - tests/stack.yml\ndocker_host: unix:///tmp/docker.sock\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	t.Setenv(configDirEnvVar, tmpDir)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "wp", cfg.Project)
	assert.Equal(t, ExecutorDocker, cfg.Executor)
	assert.Equal(t, []string{"tests/stack.yml"}, cfg.ComposeFiles)
	assert.Equal(t, "unix:///tmp/docker.sock", cfg.DockerHost)
	assert.Equal(t, []string{"docker", "compose"}, cfg.ComposeCommand)
}

func TestLoadConfig_MissingDefaultFileUsesDefaults(t *testing.T) {
	t.Setenv(configDirEnvVar, t.TempDir())
	t.Setenv(dockerHostEnvVar, "")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, defaultProject, cfg.Project)
	assert.Equal(t, ExecutorCompose, cfg.Executor)
	assert.Equal(t, defaultDockerHost, cfg.DockerHost)
	assert.Empty(t, cfg.ComposeFiles)
}

func TestLoadConfig_DockerHostFromEnvironment(t *testing.T) {
	t.Setenv(configDirEnvVar, t.TempDir())
	t.Setenv(dockerHostEnvVar, "tcp://10.0.0.5:2375")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "tcp://10.0.0.5:2375", cfg.DockerHost)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("project: [unterminated"), 0o600))

	_, err := LoadConfig(cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project is required")
	assert.Contains(t, err.Error(), "docker_host is required")

	cfg.Project = "tric"
	cfg.Executor = ExecutorCompose
	cfg.ComposeCommand = []string{"docker-compose"}
	cfg.DockerHost = defaultDockerHost

	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate_UnknownExecutor(t *testing.T) {
	cfg := &Config{Project: "tric", Executor: "podman", DockerHost: defaultDockerHost}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "executor must be")
}
