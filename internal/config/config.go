package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App     App     `mapstructure:"app"`
	Service Service `mapstructure:"service"`
	Output  Output  `mapstructure:"output"`
}

// App holds general application configuration.
type App struct {
	DataDir  string `mapstructure:"data_dir"`
	LogLevel string `mapstructure:"log_level"`
}

// Service holds text-generation service configuration. The reference
// deployment is an OpenAI-compatible local server (LM Studio, Ollama), but
// the Gemini API is supported as an alternate backend.
type Service struct {
	Provider     string `mapstructure:"provider"`      // "openai" or "gemini"
	BaseURL      string `mapstructure:"base_url"`      // OpenAI-compatible endpoint base URL
	Model        string `mapstructure:"model"`         // Model identifier
	APIKey       string `mapstructure:"api_key"`       // API key; local servers accept any value
	Timeout      string `mapstructure:"timeout"`       // Completion request timeout (duration string)
	ProbeTimeout string `mapstructure:"probe_timeout"` // Availability probe timeout (duration string)
}

// Output holds export configuration.
type Output struct {
	Directory string `mapstructure:"directory"`
	HTML      bool   `mapstructure:"html"`
}

var globalConfig *Config

// Load reads configuration from .env, the config file, and environment
// variables, in the usual viper precedence order.
func Load(configFile string) (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".draftsmith")
		viper.SetConfigType("yaml")
	}

	setDefaults()

	viper.SetEnvPrefix("DRAFTSMITH")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(config); err != nil {
		return nil, err
	}
	config.App.DataDir = expandPath(config.App.DataDir)

	globalConfig = config
	return config, nil
}

// Get returns the global configuration, loading it if necessary.
func Get() *Config {
	if globalConfig == nil {
		config, err := Load("")
		if err != nil {
			panic(fmt.Sprintf("Failed to load configuration: %v", err))
		}
		return config
	}
	return globalConfig
}

// Reset clears the cached configuration. Intended for tests.
func Reset() {
	globalConfig = nil
	viper.Reset()
}

func setDefaults() {
	viper.SetDefault("app.data_dir", ".draftsmith")
	viper.SetDefault("app.log_level", "info")

	viper.SetDefault("service.provider", "openai")
	viper.SetDefault("service.base_url", "http://localhost:1234/v1")
	viper.SetDefault("service.model", "")
	viper.SetDefault("service.api_key", "lm-studio")
	viper.SetDefault("service.timeout", "300s")
	viper.SetDefault("service.probe_timeout", "5s")

	viper.SetDefault("output.directory", "output")
	viper.SetDefault("output.html", false)
}

func validate(config *Config) error {
	switch config.Service.Provider {
	case "openai", "gemini":
	default:
		return fmt.Errorf("invalid service.provider %q (valid: openai, gemini)", config.Service.Provider)
	}
	if _, err := time.ParseDuration(config.Service.Timeout); err != nil {
		return fmt.Errorf("invalid service.timeout %q: %w", config.Service.Timeout, err)
	}
	if _, err := time.ParseDuration(config.Service.ProbeTimeout); err != nil {
		return fmt.Errorf("invalid service.probe_timeout %q: %w", config.Service.ProbeTimeout, err)
	}
	return nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// TimeoutDuration returns the parsed completion timeout.
func (s Service) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return 300 * time.Second
	}
	return d
}

// ProbeTimeoutDuration returns the parsed availability probe timeout.
func (s Service) ProbeTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(s.ProbeTimeout)
	if err != nil {
		return 5 * time.Second
	}
	return d
}

// Convenience accessors used by command handlers.
func GetService() Service        { return Get().Service }
func GetOutput() Output          { return Get().Output }
func GetDataDir() string         { return Get().App.DataDir }
func GetLogLevel() string        { return Get().App.LogLevel }
func GetOutputDirectory() string { return Get().Output.Directory }
