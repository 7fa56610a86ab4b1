package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{"APP_ENV", "HOTEL_ROOMS", "HOTEL_CURRENCY", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE", "HOTEL_COLOR"}

// clearEnv unsets every config key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

// chdir switches the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, 10, cfg.Rooms)
	assert.Equal(t, "Rs.", cfg.Currency)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.LogFile)
	assert.True(t, cfg.Color)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HOTEL_ROOMS", "25")
	t.Setenv("HOTEL_CURRENCY", "$")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_FILE", "/tmp/hotel.log")
	t.Setenv("HOTEL_COLOR", "off")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Env:       "prod",
		Rooms:     25,
		Currency:  "$",
		LogLevel:  slog.LevelDebug,
		LogFormat: "json",
		LogFile:   "/tmp/hotel.log",
		Color:     false,
	}, cfg)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "rooms not a number", key: "HOTEL_ROOMS", val: "ten"},
		{name: "zero rooms", key: "HOTEL_ROOMS", val: "0"},
		{name: "negative rooms", key: "HOTEL_ROOMS", val: "-3"},
		{name: "unknown level", key: "LOG_LEVEL", val: "verbose"},
		{name: "unknown format", key: "LOG_FORMAT", val: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			chdir(t, t.TempDir())
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "hotel.env")
	require.NoError(t, os.WriteFile(path, []byte("HOTEL_ROOMS=4\nHOTEL_CURRENCY=EUR \n"), 0o644))
	t.Setenv("HOTEL_CURRENCY", "GBP ")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Rooms)
	assert.Equal(t, "GBP ", cfg.Currency, "environment wins over the file")

	_, err = Load(filepath.Join(dir, "missing.env"))
	assert.Error(t, err)
}
