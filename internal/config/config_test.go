package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetenv(t *testing.T, keys ...string) {
	for _, k := range keys {
		old, ok := os.LookupEnv(k)
		os.Unsetenv(k)
		k := k
		t.Cleanup(func() {
			if ok {
				os.Setenv(k, old)
			} else {
				os.Unsetenv(k)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, EnvVariant, EnvLogLevel)

	c := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, Config{Variant: "memo", LogLevel: "info"}, c)
}

func TestLoadFromFile(t *testing.T) {
	unsetenv(t, EnvVariant, EnvLogLevel)

	path := filepath.Join(t.TempDir(), "fib.env")
	require.NoError(t, os.WriteFile(path, []byte("FIB_VARIANT=naive\nFIB_LOG_LEVEL=debug\n"), 0644))

	c := Load(path)
	assert.Equal(t, "naive", c.Variant)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestEnvironmentWinsOverFile(t *testing.T) {
	unsetenv(t, EnvVariant, EnvLogLevel)
	t.Setenv(EnvVariant, "table")

	path := filepath.Join(t.TempDir(), "fib.env")
	require.NoError(t, os.WriteFile(path, []byte("FIB_VARIANT=naive\n"), 0644))

	c := Load(path)
	assert.Equal(t, "table", c.Variant)
}
