package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Time calculator specifics
	Calculator CalculatorConfig
	Storage    StorageConfig
	Clock      ClockConfig
	RateLimit  RateLimitConfig
	TUI        TUIConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// CalculatorConfig points at the remote calculation service.
type CalculatorConfig struct {
	BaseURL string
}

// StorageConfig locates the SQLite file holding presets and the last inputs.
// An empty Path keeps everything in memory.
type StorageConfig struct {
	Path string
}

type ClockConfig struct {
	Timezone string
}

type RateLimitConfig struct {
	SubmitPerMin int
}

// TUIConfig controls the terminal form. The TUI owns the terminal, so it logs to LogFile.
type TUIConfig struct {
	LogFile string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and $HOME/.timecalc unless
// configFile names one explicitly.
func Load(configFile string) (*Config, error) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		if dir := appDir(); dir != "" {
			viper.AddConfigPath(dir)
		}
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Time calculator specifics
	cfg.Calculator.BaseURL = strings.TrimRight(viper.GetString("calculator.base_url"), "/")
	cfg.Storage.Path = expandHome(viper.GetString("storage.path"))
	cfg.Clock.Timezone = viper.GetString("clock.timezone")
	cfg.RateLimit.SubmitPerMin = viper.GetInt("rate_limit.submit_per_min")
	cfg.TUI.LogFile = expandHome(viper.GetString("tui.log_file"))

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8090)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("calculator.base_url", "http://localhost:8080")
	viper.SetDefault("clock.timezone", "Local")
	viper.SetDefault("rate_limit.submit_per_min", 30)
	if dir := appDir(); dir != "" {
		viper.SetDefault("storage.path", filepath.Join(dir, "timecalc.db"))
		viper.SetDefault("tui.log_file", filepath.Join(dir, "timecalc.log"))
	}
}

func validate(cfg *Config) error {
	if cfg.Calculator.BaseURL == "" {
		return fmt.Errorf("calculator.base_url is required")
	}
	if cfg.RateLimit.SubmitPerMin <= 0 {
		return fmt.Errorf("rate_limit.submit_per_min must be positive, got %d", cfg.RateLimit.SubmitPerMin)
	}
	return nil
}

// appDir is $HOME/.timecalc, or empty when there is no home directory.
func appDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".timecalc")
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
