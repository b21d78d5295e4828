package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete Seatwise configuration
type Config struct {
	Paths   PathsConfig   `mapstructure:"paths"`
	Logging LoggingConfig `mapstructure:"logging"`
	TUI     TUIConfig     `mapstructure:"tui"`
}

// PathsConfig controls where Seatwise stores data
type PathsConfig struct {
	// BookingsFile is the flat text file holding saved passenger records.
	// If empty, defaults to "bookings.txt" in the current directory.
	// Supports ~ for home directory expansion.
	BookingsFile string `mapstructure:"bookings_file"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// Dir is the directory for the log file; empty logs to stderr
	Dir string `mapstructure:"dir"`
}

// TUIConfig controls the interactive menu behavior
type TUIConfig struct {
	// ShowLegend renders the "O = available, X = booked" legend under the
	// seat map (default: true)
	ShowLegend bool `mapstructure:"show_legend"`
}

// ResolveBookingsFile returns the resolved bookings file path.
// If BookingsFile is empty, it returns the default name in baseDir.
// If BookingsFile starts with ~, it expands to the user's home directory.
// If BookingsFile is a relative path, it's resolved relative to baseDir.
func (p *PathsConfig) ResolveBookingsFile(baseDir string) string {
	if p.BookingsFile == "" {
		return filepath.Join(baseDir, "bookings.txt")
	}

	path := p.BookingsFile

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	return path
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			BookingsFile: "", // Empty means bookings.txt in the working directory
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Dir:     "", // Empty means stderr
		},
		TUI: TUIConfig{
			ShowLegend: true,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Paths defaults
	viper.SetDefault("paths.bookings_file", defaults.Paths.BookingsFile)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)

	// TUI defaults
	viper.SetDefault("tui.show_legend", defaults.TUI.ShowLegend)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "seatwise")
	}
	// Fall back to ~/.config/seatwise
	home, err := os.UserHomeDir()
	if err != nil {
		return ".seatwise"
	}
	return filepath.Join(home, ".config", "seatwise")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
