package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig drops a YAML file into a temp dir and returns its path.
func writeConfig(t *testing.T, yaml string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

func TestReadConfig(t *testing.T) {
	path := writeConfig(t, `
env: "dev"
storage_driver: "sqlite"
storage_path: "storage/persons.db"
http_server:
  address: "localhost:8082"
`)

	var cfg Config
	require.NoError(t, cleanenv.ReadConfig(path, &cfg))

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
	assert.Equal(t, "storage/persons.db", cfg.StoragePath)
	assert.Equal(t, "localhost:8082", cfg.Addr)
}

func TestStorageDriverDefaultsToMemory(t *testing.T) {
	path := writeConfig(t, `
env: "dev"
http_server:
  address: "localhost:8082"
`)

	var cfg Config
	require.NoError(t, cleanenv.ReadConfig(path, &cfg))

	assert.Equal(t, DriverMemory, cfg.StorageDriver)
}

func TestMissingEnvIsRejected(t *testing.T) {
	// env:"ENV" would satisfy the requirement; make sure it is not set
	os.Unsetenv("ENV")

	path := writeConfig(t, `
http_server:
  address: "localhost:8082"
`)

	var cfg Config
	assert.Error(t, cleanenv.ReadConfig(path, &cfg))
}
