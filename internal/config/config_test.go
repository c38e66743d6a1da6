package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"platzistore/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	config.SetDefaults(v)
	return v
}

func TestLoadDefaults(t *testing.T) {
	v := newViper()
	v.Set("JWT_SECRET", "secret")

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, config.DriverMongo, cfg.StoreDriver)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.SeedProducts)
}

func TestLoadNormalisesPort(t *testing.T) {
	v := newViper()
	v.Set("JWT_SECRET", "secret")
	v.Set("APP_PORT", "3000")
	v.Set("STORE_DRIVER", "MEMORY")

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Port)
	assert.Equal(t, config.DriverMemory, cfg.StoreDriver)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	v := newViper()
	_, err := config.Load(v)
	assert.EqualError(t, err, "JWT_SECRET is required")

	v.Set("JWT_SECRET", "secret")
	v.Set("STORE_DRIVER", "redis")
	_, err = config.Load(v)
	assert.ErrorContains(t, err, "unsupported STORE_DRIVER")

	v.Set("STORE_DRIVER", "sqlite")
	v.Set("TOKEN_TTL", "0s")
	_, err = config.Load(v)
	assert.ErrorContains(t, err, "TOKEN_TTL must be positive")
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.env")
	require.NoError(t, os.WriteFile(path, []byte("PLATZI_TEST_SECRET=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("PLATZI_TEST_SECRET") })

	require.NoError(t, config.LoadEnvFiles("", filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "from-file", os.Getenv("PLATZI_TEST_SECRET"))

	v := viper.New()
	v.AutomaticEnv()
	assert.Equal(t, "from-file", v.GetString("PLATZI_TEST_SECRET"))
}
