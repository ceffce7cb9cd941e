package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigToml = `
[development]
api_base_url = "http://localhost:8000/api/v1/"
token_store = "memory"
default_period = 14
log_level = "debug"

[production]
api_base_url = "https://fit.example.com/api/v1"
token_store = "redis"
redis_host = "redis"
charts_dir = "/var/lib/gymdash/charts"
charts_format = "svg"
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Development(t *testing.T) {
	path := writeTestConfig(t, testConfigToml)

	cfg, err := Load("dev", path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "http://localhost:8000/api/v1", cfg.ApiBaseURL)
	assert.Equal(t, TokenStoreMemory, cfg.TokenStore)
	assert.Equal(t, 14, cfg.DefaultPeriod)
	assert.Equal(t, 10, cfg.WorkoutsLimit)
	assert.Equal(t, "png", cfg.ChartsFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Production(t *testing.T) {
	path := writeTestConfig(t, testConfigToml)

	cfg, err := Load("production", path)
	require.NoError(t, err)

	assert.Equal(t, TokenStoreRedis, cfg.TokenStore)
	assert.Equal(t, "redis", cfg.RedisHost)
	assert.Equal(t, "6379", cfg.RedisPort)
	assert.Equal(t, 7, cfg.DefaultPeriod)
	assert.Equal(t, "svg", cfg.ChartsFormat)
	assert.Equal(t, "/var/lib/gymdash/charts", cfg.ChartsDir)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("development", filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/api/v1", cfg.ApiBaseURL)
	assert.Equal(t, TokenStoreFile, cfg.TokenStore)
}

func TestLoad_Errors(t *testing.T) {
	path := writeTestConfig(t, testConfigToml)
	_, err := Load("staging", path)
	assert.EqualError(t, err, "unknown env: staging")

	path = writeTestConfig(t, "[development]\ntoken_store = \"sqlite\"\n")
	_, err = Load("dev", path)
	assert.EqualError(t, err, "unknown token store: sqlite")

	path = writeTestConfig(t, "[development]\napi_base_url = \"localhost:8000\"\n")
	_, err = Load("dev", path)
	assert.EqualError(t, err, "api base url must be http(s): localhost:8000")

	path = writeTestConfig(t, "[development]\ntoken_store = \"file\"\n")
	_, err = Load("prod", path)
	assert.Error(t, err)
}
