package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinylink/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, config.DriverPostgres, cfg.Database.Driver)
	assert.True(t, cfg.Database.Migrate)
	assert.Equal(t, "http://localhost:8080", cfg.App.BaseURL)
	assert.Equal(t, 2048, cfg.Validation.MaxURLLength)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("SERVER_PORT=9090\nBASE_URL=https://file.example\n"), 0o600))

	t.Setenv("BASE_URL", "https://sho.rt/")
	// godotenv writes straight into the process environment.
	t.Cleanup(func() { _ = os.Unsetenv("SERVER_PORT") })

	cfg, err := config.Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "https://sho.rt", cfg.App.BaseURL, "trailing slash is trimmed")
}

func TestLoad_UnsupportedDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "mysql")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mysql")
}

func TestLoad_InvalidBaseURL(t *testing.T) {
	t.Setenv("BASE_URL", "not a url")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}

func TestLoad_PprofNeedsSecret(t *testing.T) {
	t.Setenv("PPROF_ENABLED", "true")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)

	t.Setenv("PPROF_SECRET", "s3cret")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.True(t, cfg.Pprof.Enabled)
}

func TestDatabaseConfig_URL(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "app",
		Password: "p@ss",
		DBName:   "links",
		SSLMode:  "require",
	}

	assert.Equal(t, "postgres://app:p%40ss@db:5433/links?sslmode=require", cfg.URL())
}

func TestLogConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			c := config.LogConfig{Level: tt.level}
			assert.Equal(t, tt.want, c.SlogLevel())
		})
	}
}
