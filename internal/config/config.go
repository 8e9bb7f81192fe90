package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultAPIURL is the hosted CTRL backend used when no override is set.
const DefaultAPIURL = "https://ctrl-backend-cfg7.onrender.com"

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName               string        `mapstructure:"app_name"`
	Env                   string        `mapstructure:"app_env"`
	LogLevel              string        `mapstructure:"log_level"`
	APIBaseURL            string        `mapstructure:"api_url"`
	RequestTimeoutSeconds int64         `mapstructure:"request_timeout_seconds"`
	RequestTimeout        time.Duration `mapstructure:"-"`
	OutputFormat          string        `mapstructure:"output_format"`
	Token                 string        `mapstructure:"token" json:"-"`
}

// Load reads configuration from environment variables and config files.
// It is meant to be called once at process start; the result is treated as read-only.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "ctrl")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("api_url", DefaultAPIURL)
	v.SetDefault("request_timeout_seconds", 30)
	v.SetDefault("output_format", "json")
	v.SetDefault("token", "")

	v.AutomaticEnv()
	// EXPO_PUBLIC_API_URL is what the mobile app reads; CTRL_API_URL wins when both are set.
	if err := v.BindEnv("api_url", "CTRL_API_URL", "EXPO_PUBLIC_API_URL"); err != nil {
		return nil, fmt.Errorf("bind api_url: %w", err)
	}
	if err := v.BindEnv("token", "CTRL_TOKEN"); err != nil {
		return nil, fmt.Errorf("bind token: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.APIBaseURL = strings.TrimSpace(cfg.APIBaseURL)
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("invalid api_url (must not be empty)")
	}

	if cfg.RequestTimeoutSeconds < 0 {
		return nil, fmt.Errorf("invalid request_timeout_seconds (must be zero or positive seconds)")
	}
	cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second

	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(cfg.OutputFormat))
	switch cfg.OutputFormat {
	case "json", "yaml":
	default:
		return nil, fmt.Errorf("invalid output_format %q (expected json or yaml)", cfg.OutputFormat)
	}

	cfg.Token = strings.TrimSpace(cfg.Token)

	return &cfg, nil
}
