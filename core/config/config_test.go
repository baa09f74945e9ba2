package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"server-launcher/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "PORT", cfg.Launcher.PortEnv)
	assert.Equal(t, "3002", cfg.Launcher.DefaultPort)
	assert.Equal(t, "/app", cfg.Launcher.WorkDir)
	assert.Equal(t, "/app/server", cfg.Launcher.Binary)
	assert.Equal(t, "-release=true", cfg.Launcher.Flag)

	assert.Equal(t, "timeful-backend", cfg.Function.App)
	assert.Equal(t, "serve", cfg.Function.Name)
	assert.Equal(t, "Dockerfile.modal", cfg.Function.Dockerfile)
	assert.Equal(t, 1, cfg.Function.MinContainers)
	assert.Equal(t, "timeful-backend-secrets", cfg.Function.SecretName)
	assert.Equal(t, 3002, cfg.Function.Port)
	assert.Equal(t, "timeful-backend", cfg.Function.Label)
	assert.Equal(t, 60, cfg.Function.StartupTimeoutSeconds)

	assert.False(t, cfg.Secrets.Enabled)
	assert.False(t, cfg.Server.Enabled)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "secrets", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("LAUNCHER_BINARY", "/srv/server")
	t.Setenv("FUNCTION_MIN_CONTAINERS", "3")
	t.Setenv("SERVER_ENABLED", "true")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/srv/server", cfg.Launcher.Binary)
	assert.Equal(t, 3, cfg.Function.MinContainers)
	assert.True(t, cfg.Server.Enabled)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_SecretNameAliases(t *testing.T) {
	t.Run("Legacy", func(t *testing.T) {
		t.Setenv(config.LegacySecretEnv, "legacy-secrets")

		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "legacy-secrets", cfg.Function.SecretName)
	})

	t.Run("PrimaryWins", func(t *testing.T) {
		t.Setenv("FUNCTION_SECRET_NAME", "primary-secrets")
		t.Setenv(config.LegacySecretEnv, "legacy-secrets")

		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "primary-secrets", cfg.Function.SecretName)
	})
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	content := "LAUNCHER_WORK_DIR=/opt/app\nLAUNCHER_FLAG=-release=false\nSECRETS_ENABLED=true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

	// The environment wins over .env.
	t.Setenv("LAUNCHER_FLAG", "-release=true")
	// Registered for cleanup so variables loaded from .env do not leak into other tests.
	t.Setenv("LAUNCHER_WORK_DIR", "")
	t.Setenv("SECRETS_ENABLED", "")
	require.NoError(t, os.Unsetenv("LAUNCHER_WORK_DIR"))
	require.NoError(t, os.Unsetenv("SECRETS_ENABLED"))

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/opt/app", cfg.Launcher.WorkDir)
	assert.Equal(t, "-release=true", cfg.Launcher.Flag)
	assert.True(t, cfg.Secrets.Enabled)
}
