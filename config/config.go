package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"explore-options/domain"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr         string        `yaml:"addr"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		IdleTimeout  time.Duration `yaml:"idle_timeout"`
	} `yaml:"server"`
	RateLimit struct {
		Capacity int           `yaml:"capacity"`
		Refill   time.Duration `yaml:"refill"`
	} `yaml:"rate_limit"`
	Cache struct {
		Backend   string        `yaml:"backend"` // "memory" or "redis"
		RedisAddr string        `yaml:"redis_addr"`
		KeyPrefix string        `yaml:"key_prefix"`
		TTL       time.Duration `yaml:"ttl"`
	} `yaml:"cache"`
	History struct {
		Capacity int `yaml:"capacity"`
	} `yaml:"history"`
	Loan    *domain.LoanInput `yaml:"loan"`
	Explore struct {
		Scenario       string `yaml:"scenario"`
		ComparisonMode string `yaml:"comparison_mode"`
	} `yaml:"explore"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("EXPLORE_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		cfg.Cache.Backend = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Cache.RedisAddr = v
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Cache.TTL = d
		}
	}
	if v := os.Getenv("RATE_LIMIT_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimit.Capacity = n
		}
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15 * time.Second
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60 * time.Second
	}
	if cfg.RateLimit.Capacity == 0 {
		cfg.RateLimit.Capacity = 60
	}
	if cfg.RateLimit.Refill == 0 {
		cfg.RateLimit.Refill = time.Minute
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = "memory"
	}
	if cfg.Cache.RedisAddr == "" {
		cfg.Cache.RedisAddr = "localhost:6379"
	}
	if cfg.Cache.KeyPrefix == "" {
		cfg.Cache.KeyPrefix = "explore-options:"
	}
	if cfg.History.Capacity == 0 {
		cfg.History.Capacity = 100
	}
	if cfg.Loan == nil {
		def := domain.DefaultLoanInput()
		cfg.Loan = &def
	}
	if cfg.Explore.Scenario == "" {
		cfg.Explore.Scenario = string(domain.SameTenure)
	}
	if cfg.Explore.ComparisonMode == "" {
		cfg.Explore.ComparisonMode = string(domain.CompareRefinanced)
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values. Loan figures are
// validated when the explorer is initialized.
func (c *Config) Validate() error {
	if c.RateLimit.Capacity <= 0 {
		return fmt.Errorf("rate_limit.capacity must be positive")
	}
	if c.RateLimit.Refill <= 0 {
		return fmt.Errorf("rate_limit.refill must be positive")
	}
	switch c.Cache.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("cache.backend must be memory or redis, got %q", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative")
	}
	if c.History.Capacity <= 0 {
		return fmt.Errorf("history.capacity must be positive")
	}
	if _, err := domain.ParseScenarioID(c.Explore.Scenario); err != nil {
		return fmt.Errorf("explore.scenario: %w", err)
	}
	if _, err := domain.ParseComparisonMode(c.Explore.ComparisonMode); err != nil {
		return fmt.Errorf("explore.comparison_mode: %w", err)
	}
	return nil
}
