package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"API_BASE_URL" env-default:"http://localhost:5000/api"`
	SiteURL string        `yaml:"site_url" env:"SITE_URL" env-default:"http://localhost:3000"`
	Timeout time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"15s"`
}

type TokenConfig struct {
	// Path of the persisted access/refresh token pair. Only the API client
	// reads or writes this file.
	Path string `yaml:"path" env:"TOKEN_PATH" env-default:".storefront/tokens.json"`
}

type CatalogConfig struct {
	// PageSize is the client-side pagination window; FetchLimit is the capped
	// page requested from the backend, which the window slices locally.
	PageSize   int `yaml:"page_size" env:"CATALOG_PAGE_SIZE" env-default:"12"`
	FetchLimit int `yaml:"fetch_limit" env:"CATALOG_FETCH_LIMIT" env-default:"100"`
}

type CacheConfig struct {
	Enabled    bool          `yaml:"enabled" env:"CACHE_ENABLED" env-default:"false"`
	Addr       string        `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password   string        `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB         int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"10m"`
}

type Config struct {
	Env     string        `yaml:"env" env:"ENV" env-default:"local"`
	API     APIConfig     `yaml:"api"`
	Tokens  TokenConfig   `yaml:"tokens"`
	Catalog CatalogConfig `yaml:"catalog"`
	Cache   CacheConfig   `yaml:"cache"`
}

// Load reads the YAML file at configPath (falling back to CONFIG_PATH) when
// one is set, otherwise reads environment variables alone.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	var cfg Config

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", configPath)
		}

		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config file %s: %w", configPath, err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read config from environment: %w", err)
	}

	return &cfg, nil
}

func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return cfg
}
