package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from the environment.
type Config struct {
	BaseURL            string        `mapstructure:"base_url"`
	ListLimit          int           `mapstructure:"list_limit"`
	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout"`
	HTTPTimeout        time.Duration `mapstructure:"-"`
	LogLevel           string        `mapstructure:"log_level"`
	LogDevelopment     bool          `mapstructure:"log_development"`
	AWSRegion          string        `mapstructure:"aws_region"`
	BucketName         string        `mapstructure:"bucket_name"`
	TopicARN           string        `mapstructure:"topic_arn"`
	Handler            string        `mapstructure:"handler"`
}

// Load reads configuration from environment variables and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()

	v.SetDefault("base_url", "https://pokeapi.co/api/v2")
	v.SetDefault("list_limit", 60)
	v.SetDefault("http_timeout", 30) // seconds
	v.SetDefault("log_level", "info")
	v.SetDefault("log_development", false)
	v.SetDefault("aws_region", "")
	v.SetDefault("bucket_name", "")
	v.SetDefault("topic_arn", "")
	v.SetDefault("handler", "")

	// Names the Lambda runtime and PokeAPI deployments already use.
	_ = v.BindEnv("base_url", "POKEAPI_BASE_URL")
	_ = v.BindEnv("handler", "_HANDLER")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("invalid base_url (must not be empty)")
	}
	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid http_timeout (must be positive seconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	return &cfg, nil
}
