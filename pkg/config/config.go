package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Backend API configuration
	API APIConfig `mapstructure:"api"`

	// Session persistence configuration
	Session SessionConfig `mapstructure:"session"`

	// External pincode lookup configuration
	Pincode PincodeConfig `mapstructure:"pincode"`

	// List screen configuration
	List ListConfig `mapstructure:"list"`

	// Logging configuration
	LogLevel string `mapstructure:"log_level"`
}

// APIConfig holds backend REST API configuration
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	UserAgent      string `mapstructure:"user_agent"`
}

// SessionConfig holds session persistence configuration
type SessionConfig struct {
	// StorePath is the JSON file backing the persisted session,
	// the desktop analog of the browser's local storage.
	StorePath string `mapstructure:"store_path"`
}

// PincodeConfig holds the external postal pincode service configuration
type PincodeConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// ListConfig holds defaults shared by all list screens
type ListConfig struct {
	PageSize int `mapstructure:"page_size"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/navigator-console")

	// Set default values
	setDefaults()

	// Enable environment variable support
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Override with environment variables
	overrideWithEnv(&config)

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Backend API defaults
	viper.SetDefault("api.base_url", "http://localhost:5000/api/v1")
	viper.SetDefault("api.timeout_seconds", 30)
	viper.SetDefault("api.user_agent", "navigator-console")

	// Session defaults
	viper.SetDefault("session.store_path", defaultSessionPath())

	// Pincode lookup defaults
	viper.SetDefault("pincode.base_url", "https://api.postalpincode.in")
	viper.SetDefault("pincode.timeout_seconds", 10)

	// List screen defaults
	viper.SetDefault("list.page_size", 10)

	// Logging defaults
	viper.SetDefault("log_level", "info")
}

// overrideWithEnv overrides configuration with environment variables
func overrideWithEnv(config *Config) {
	if baseURL := os.Getenv("API_BASE_URL"); baseURL != "" {
		config.API.BaseURL = baseURL
	}

	if storePath := os.Getenv("SESSION_STORE_PATH"); storePath != "" {
		config.Session.StorePath = storePath
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.LogLevel = logLevel
	}
}

// validate validates the configuration
func validate(config *Config) error {
	if config.API.BaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}

	if config.Session.StorePath == "" {
		return fmt.Errorf("session store path is required")
	}

	if config.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("invalid API timeout: %d", config.API.TimeoutSeconds)
	}

	if config.List.PageSize <= 0 {
		return fmt.Errorf("invalid list page size: %d", config.List.PageSize)
	}

	return nil
}

// defaultSessionPath returns the default session store location
func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".navigator-console/session.json"
	}
	return home + "/.navigator-console/session.json"
}
