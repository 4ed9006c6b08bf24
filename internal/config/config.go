package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	// Backend describes the hosted entity store every record lives in.
	// Durations are strings like "10s", parsed at wiring time.
	Backend struct {
		BaseURL    string `yaml:"base_url" env:"BACKEND_BASE_URL"`
		AppID      string `yaml:"app_id" env:"BACKEND_APP_ID"`
		APIKey     string `yaml:"api_key" env:"BACKEND_API_KEY"`
		Timeout    string `yaml:"timeout" env:"BACKEND_TIMEOUT"`
		RetryReads bool   `yaml:"retry_reads" env:"BACKEND_RETRY_READS"`
	} `yaml:"backend"`

	// Sync holds the refresh cadence of the view-data bindings. The chat
	// interval is an observable contract of the chat panel, not a tuning knob.
	// BindingIdleTTL bounds how long a binding keeps polling after its last
	// viewer left.
	Sync struct {
		ChatPollInterval string `yaml:"chat_poll_interval" env:"SYNC_CHAT_POLL_INTERVAL"`
		PagePollInterval string `yaml:"page_poll_interval" env:"SYNC_PAGE_POLL_INTERVAL"`
		BindingIdleTTL   string `yaml:"binding_idle_ttl" env:"SYNC_BINDING_IDLE_TTL"`
	} `yaml:"sync"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; defaults plus env cover the common case
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Backend.BaseURL = "https://app.base44.com"
	config.Backend.Timeout = "10s"
	config.Backend.RetryReads = true

	config.Sync.ChatPollInterval = "3s"
	config.Sync.PagePollInterval = "15s"
	config.Sync.BindingIdleTTL = "10m"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Backend.BaseURL == "" {
		return fmt.Errorf("backend base URL is required")
	}

	if config.Backend.AppID == "" {
		return fmt.Errorf("backend app id is required")
	}

	for name, value := range map[string]string{
		"backend timeout":    config.Backend.Timeout,
		"chat poll interval": config.Sync.ChatPollInterval,
		"page poll interval": config.Sync.PagePollInterval,
		"binding idle ttl":   config.Sync.BindingIdleTTL,
	} {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%s is not a valid duration: %w", name, err)
		}
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}

	return nil
}
