package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig("does-not-exist.yaml")
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "uploads", cfg.Server.StoragePath)
	assert.Equal(t, "labtim", cfg.Database.DBName)
	assert.Equal(t, "24h", cfg.JWT.AccessTokenExpiration)
	assert.Equal(t, "720h", cfg.JWT.RefreshTokenExpiration)
	assert.Equal(t, "labtim.app", cfg.JWT.Issuer)
	assert.Equal(t, "test-secret", cfg.JWT.Secret)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: "8080"
database:
  dbname: fromfile
jwt:
  secret: file-secret
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "fromfile", cfg.Database.DBName)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}

func TestLoadConfigMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestLoadConfigInvalidExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRATION", "not-a-duration")

	_, err := LoadConfig("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Host = "db.local"
	cfg.Database.Port = "5433"
	cfg.Database.User = "labtim"
	cfg.Database.Password = "pw"
	cfg.Database.DBName = "labtim"
	cfg.Database.SSLMode = "require"

	assert.Equal(t,
		"postgres://labtim:pw@db.local:5433/labtim?sslmode=require",
		cfg.GetPostgresConnectionString())
}

func TestGetPostgresConnectionStringDefaultsSSLMode(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "postgres"
	cfg.Database.Password = "postgres"
	cfg.Database.DBName = "labtim"

	assert.Contains(t, cfg.GetPostgresConnectionString(), "sslmode=disable")
}
