package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PETADOPT_CONFIG", "PETADOPT_SERVER_ADDR", "PETADOPT_SERVER_SESSION_TTL", "PETADOPT_STORAGE_DRIVER", "PETADOPT_STORAGE_DSN",
		"PETADOPT_LOG_LEVEL", "PORT", "DB_DSN", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", c.Server.Addr)
	require.Equal(t, 5*time.Second, c.Server.ReadTimeout)
	require.Equal(t, 30*time.Minute, c.Server.SessionTTL)
	require.Equal(t, DriverMemory, c.Storage.Driver)
	require.Equal(t, "info", c.Log.Level)
	require.Equal(t, "pet-adoption", c.App.Name)
	require.Equal(t, 10*time.Second, c.Client.Timeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PETADOPT_LOG_LEVEL", "debug")
	t.Setenv("PETADOPT_STORAGE_DRIVER", "sqlite")
	t.Setenv("PORT", "9090")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "debug", c.Log.Level)
	require.Equal(t, DriverSQLite, c.Storage.Driver)
	require.Equal(t, ":9090", c.Server.Addr)
}

func TestLoad_LegacyDSNSelectsPostgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DSN", "postgres://localhost/pets")
	t.Setenv("LOG_FORMAT", "json")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, DriverPostgres, c.Storage.Driver)
	require.Equal(t, "postgres://localhost/pets", c.Storage.DSN)
	require.Equal(t, "json", c.Log.Format)
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "petadopt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":7000"
  read_timeout: 2s
  session_ttl: 5m
storage:
  driver: sqlite
  sqlite_path: /tmp/pets.db
`), 0o600))
	t.Setenv("PETADOPT_CONFIG", path)
	t.Setenv("PORT", "9999")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":7000", c.Server.Addr)
	require.Equal(t, 2*time.Second, c.Server.ReadTimeout)
	require.Equal(t, 5*time.Minute, c.Server.SessionTTL)
	require.Equal(t, DriverSQLite, c.Storage.Driver)
	require.Equal(t, "/tmp/pets.db", c.Storage.SQLitePath)
}

func TestValidate(t *testing.T) {
	require.Error(t, Config{Storage: StorageConfig{Driver: "mongo"}}.Validate())
	require.Error(t, Config{Storage: StorageConfig{Driver: DriverPostgres}}.Validate())
	require.NoError(t, Config{Storage: StorageConfig{Driver: DriverMemory}}.Validate())
	require.Error(t, Config{
		Server:  ServerConfig{SessionTTL: -time.Second},
		Storage: StorageConfig{Driver: DriverMemory},
	}.Validate())
}
