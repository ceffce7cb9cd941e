package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	TokenStoreFile   = "file"
	TokenStoreRedis  = "redis"
	TokenStoreMemory = "memory"
)

type Config struct {
	Environment string `toml:"environment"`
	// backend
	ApiBaseURL string `toml:"api_base_url"`
	// session token
	TokenStore string `toml:"token_store"`
	TokenPath  string `toml:"token_path"`
	RedisHost  string `toml:"redis_host"`
	RedisPort  string `toml:"redis_port"`
	// dashboard
	DefaultPeriod int    `toml:"default_period"`
	WorkoutsLimit int    `toml:"workouts_limit"`
	ChartsDir     string `toml:"charts_dir"`
	ChartsFormat  string `toml:"charts_format"`
	MetricsAddr   string `toml:"metrics_addr"`
	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`
	// telemetry
	SentryEnabled    bool `toml:"sentry_enabled"`
	HoneycombEnabled bool `toml:"honeycomb_enabled"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the section for env,
// with defaults applied for anything left unset.
// A missing file is not an error: the development defaults are used.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
		t.Development = &Config{}
		t.Production = &Config{}
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env [%s] missing in %s", env, path)
	}

	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ApiBaseURL == "" {
		c.ApiBaseURL = "http://localhost:8000/api/v1"
	}
	c.ApiBaseURL = strings.TrimRight(c.ApiBaseURL, "/")
	if c.TokenStore == "" {
		c.TokenStore = TokenStoreFile
	}
	if c.RedisHost == "" {
		c.RedisHost = "localhost"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.DefaultPeriod <= 0 {
		c.DefaultPeriod = 7
	}
	if c.WorkoutsLimit <= 0 {
		c.WorkoutsLimit = 10
	}
	if c.ChartsFormat == "" {
		c.ChartsFormat = "png"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) Validate() error {
	switch c.TokenStore {
	case TokenStoreFile, TokenStoreRedis, TokenStoreMemory:
	default:
		return fmt.Errorf("unknown token store: %s", c.TokenStore)
	}

	switch c.ChartsFormat {
	case "png", "svg":
	default:
		return fmt.Errorf("unknown charts format: %s", c.ChartsFormat)
	}

	if !strings.HasPrefix(c.ApiBaseURL, "http://") && !strings.HasPrefix(c.ApiBaseURL, "https://") {
		return fmt.Errorf("api base url must be http(s): %s", c.ApiBaseURL)
	}

	return nil
}
