package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the console configuration
type Config struct {
	API struct {
		BaseURL        string `yaml:"base_url" env:"API_BASE_URL"`
		RequestTimeout string `yaml:"request_timeout" env:"API_REQUEST_TIMEOUT"`
		LoginTimeout   string `yaml:"login_timeout" env:"API_LOGIN_TIMEOUT"`
	} `yaml:"api"`

	Cache struct {
		// FreshFor is how long a successful query result is served
		// without refetching, absent an explicit invalidation.
		FreshFor string `yaml:"fresh_for" env:"CACHE_FRESH_FOR"`
	} `yaml:"cache"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; env vars alone are enough to run
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	err := loadFromEnv(config)
	if err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.API.BaseURL = "http://localhost:8080"
	config.API.RequestTimeout = "30s"
	config.API.LoginTimeout = "10s"

	config.Cache.FreshFor = "5m"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.API.BaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}

	if _, err := url.ParseRequestURI(config.API.BaseURL); err != nil {
		return fmt.Errorf("invalid API base URL: %w", err)
	}

	if _, err := time.ParseDuration(config.API.RequestTimeout); err != nil {
		return fmt.Errorf("invalid request timeout format: %w", err)
	}

	if _, err := time.ParseDuration(config.API.LoginTimeout); err != nil {
		return fmt.Errorf("invalid login timeout format: %w", err)
	}

	if _, err := time.ParseDuration(config.Cache.FreshFor); err != nil {
		return fmt.Errorf("invalid cache freshness window format: %w", err)
	}

	return nil
}

// RequestTimeout returns the per-request timeout as a duration
func (c *Config) RequestTimeout() time.Duration {
	d, _ := time.ParseDuration(c.API.RequestTimeout)
	return d
}

// LoginTimeout returns the auth-flow timeout as a duration
func (c *Config) LoginTimeout() time.Duration {
	d, _ := time.ParseDuration(c.API.LoginTimeout)
	return d
}

// CacheFreshFor returns the cache freshness window as a duration
func (c *Config) CacheFreshFor() time.Duration {
	d, _ := time.ParseDuration(c.Cache.FreshFor)
	return d
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets an environment variable as an integer or returns a default value
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// GetEnvAsBool gets an environment variable as a boolean or returns a default value
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	valueLower := strings.ToLower(valueStr)
	if valueLower == "true" || valueLower == "1" || valueLower == "yes" {
		return true
	}
	if valueLower == "false" || valueLower == "0" || valueLower == "no" {
		return false
	}

	return defaultValue
}
