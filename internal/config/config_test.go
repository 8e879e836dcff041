package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Server:   ServerConfig{Host: "0.0.0.0", Port: 6020},
		Storage:  StorageConfig{Driver: DriverPostgres},
		Database: DatabaseConfig{URL: "postgres://localhost/survey", SchemaTimeout: 10 * time.Second},
		Export:   ExportConfig{FileName: "encuestas_satisfaccion", Sheet: "respuestas"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid postgres", mutate: func(c *Config) {}},
		{name: "memory needs no url", mutate: func(c *Config) {
			c.Storage.Driver = "Memory"
			c.Database.URL = ""
		}},
		{name: "postgres without url", mutate: func(c *Config) { c.Database.URL = "  " }, wantErr: "DB_URL required"},
		{name: "postgres without schema timeout", mutate: func(c *Config) { c.Database.SchemaTimeout = 0 }, wantErr: "database.schema_timeout"},
		{name: "memory ignores schema timeout", mutate: func(c *Config) {
			c.Storage.Driver = DriverMemory
			c.Database.SchemaTimeout = 0
		}},
		{name: "unknown driver", mutate: func(c *Config) { c.Storage.Driver = "xlsx" }, wantErr: "storage.driver"},
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "server.port"},
		{name: "empty export name", mutate: func(c *Config) { c.Export.FileName = "" }, wantErr: "export.file_name"},
		{name: "empty sheet", mutate: func(c *Config) { c.Export.Sheet = "" }, wantErr: "export.sheet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_FromEnvWithDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("SERVER_PORT", "7000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:7000", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 10*time.Second, cfg.Database.SchemaTimeout)
	assert.Equal(t, "encuestas_satisfaccion", cfg.Export.FileName)
	assert.Equal(t, "respuestas", cfg.Export.Sheet)
	assert.Equal(t, "*", cfg.CORS.AllowedOrigins)
}

func TestLoad_SchemaTimeoutIndependentOfShutdown(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DB_URL", "postgres://localhost/survey")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("DB_SCHEMA_TIMEOUT", "45s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 45*time.Second, cfg.Database.SchemaTimeout)
}

func TestLoad_PostgresRequiresURL(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DB_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_URL required")
}

func TestLoad_FromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "server:\n  port: 9090\nstorage:\n  driver: memory\nlog:\n  level: debug\n  format: text\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	require.Error(t, err)
}
