package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 720*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "gpt-3.5-turbo", cfg.AI.Model)
	assert.Equal(t, 60*time.Second, cfg.AI.Timeout)
	assert.False(t, cfg.AI.Configured())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins())
	assert.Equal(t, time.UTC, cfg.Analytics.Location())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "8088")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/study")
	t.Setenv("FRONTEND_URL", "https://study.example.com/")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8088", cfg.Server.Port)
	assert.True(t, cfg.AI.Configured())
	assert.Equal(t, "postgres://u:p@localhost:5432/study", cfg.Database.URL)
	assert.Equal(t, []string{"http://localhost:3000", "https://study.example.com"}, cfg.AllowedOrigins())
}

func TestLoadConfig_FromYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: "9000"
database:
  driver: sqlite
  url: "file::memory:"
jwt:
  secret: from-file
  ttl: 1h
ai:
  timeout: 5s
analytics:
  timezone: Europe/Paris
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "from-file", cfg.JWT.Secret)
	assert.Equal(t, time.Hour, cfg.JWT.TTL)
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "Europe/Paris", cfg.Analytics.Location().String())
}

func TestLoadConfig_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
}

func TestLoadConfig_ReleaseNeedsStrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "short")
	t.Setenv("SERVER_MODE", "release")

	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
}

func TestLoadConfig_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_DRIVER", "oracle")

	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
}

func TestAnalyticsLocation_InvalidFallsBackToUTC(t *testing.T) {
	c := AnalyticsConfig{Timezone: "Not/AZone"}
	assert.Equal(t, time.UTC, c.Location())
}
