package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STOWAGE_CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "memory", cfg.Store.Driver)
	require.Equal(t, "shallow", cfg.Store.Cascade)
	require.False(t, cfg.Validation.StrictTypes)

	locale, err := cfg.Locale()
	require.NoError(t, err)
	require.Equal(t, "en", locale.String())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stowage.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
store:
  driver: sqlite
  dsn: stowage.db
  cascade: recursive
log:
  level: debug
validation:
  strict_types: true
seed: false
`), 0o600))

	t.Setenv("STOWAGE_CONFIG_PATH", path)
	t.Setenv("STOWAGE_LOG_LEVEL", "warn")
	t.Setenv("STOWAGE_VIEW_LOCALE", "de")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.Store.Driver)
	require.Equal(t, "stowage.db", cfg.Store.DSN)
	require.Equal(t, "recursive", cfg.Store.Cascade)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, "de", cfg.View.Locale)
	require.True(t, cfg.Validation.StrictTypes)
	require.False(t, cfg.Seed)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("STOWAGE_CONFIG_PATH", "")

	t.Setenv("STOWAGE_SEED", "maybe")
	_, err := Load()
	require.ErrorContains(t, err, "STOWAGE_SEED")

	t.Setenv("STOWAGE_SEED", "")
	t.Setenv("STOWAGE_STORE_CASCADE", "sideways")
	_, err = Load()
	require.ErrorContains(t, err, "cascade")

	t.Setenv("STOWAGE_STORE_CASCADE", "")
	t.Setenv("STOWAGE_STORE_DRIVER", "postgres")
	_, err = Load()
	require.ErrorContains(t, err, "driver")
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("STOWAGE_CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := Load()
	require.ErrorContains(t, err, "read config file")
}
