package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host        string
	Port        int
	Environment string
	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`
	// sentry
	SentryEnabled bool `toml:"sentry_enabled"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// prometheus metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// gemini AI coach
	GeminiBaseURL string `toml:"gemini_base_url"`
	GeminiModel   string `toml:"gemini_model"`
	// chat
	ChatRateLimitAllowedPerMin int `toml:"chat_rate_limit_allowed_per_min"`
	// motivational quotes
	QuotesCsvPath string `toml:"quotes_csv_path"`
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

func Load(env, path string) (*Config, error) {
	var configs Toml
	if _, err := toml.DecodeFile(path, &configs); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := configs.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config for env: %s", env)
	}

	cfg.Environment = env

	return cfg, nil
}
