package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/seatwise/seatwise/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify Seatwise configuration",
	Long: `View or modify Seatwise configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  seatwise config set paths.bookings_file ~/flights/bookings.txt
  seatwise config set logging.level debug

Valid keys:
  paths.bookings_file - Flat file holding saved passenger records
  logging.enabled     - Enable debug logging (true/false)
  logging.level       - Log level: debug, info, warn, error
  logging.dir         - Directory for the log file; empty logs to stderr
  tui.show_legend     - Show the seat map legend (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/seatwise/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	fmt.Println("Current configuration:")
	fmt.Println()

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Printf("Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Printf("Config file: (none - using defaults)\n")
	}
	fmt.Println()

	fmt.Println("paths:")
	if cfg.Paths.BookingsFile == "" {
		fmt.Printf("  bookings_file: (default: ./bookings.txt)\n")
	} else {
		fmt.Printf("  bookings_file: %s\n", cfg.Paths.BookingsFile)
	}

	fmt.Println("logging:")
	fmt.Printf("  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Printf("  level: %s\n", cfg.Logging.Level)
	if cfg.Logging.Dir == "" {
		fmt.Printf("  dir: (stderr)\n")
	} else {
		fmt.Printf("  dir: %s\n", cfg.Logging.Dir)
	}

	fmt.Println("tui:")
	fmt.Printf("  show_legend: %v\n", cfg.TUI.ShowLegend)

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	validKeys := map[string]string{
		"paths.bookings_file": "string",
		"logging.enabled":     "bool",
		"logging.level":       "string",
		"logging.dir":         "string",
		"tui.show_legend":     "bool",
	}

	keyType, ok := validKeys[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nRun 'seatwise config set --help' to see valid keys", key)
	}

	var typedValue interface{}
	switch keyType {
	case "string":
		if key == "logging.level" && !isValidLogLevel(value) {
			return fmt.Errorf("invalid value for %s: %s\nValid options: %s",
				key, value, strings.Join(config.ValidLogLevels(), ", "))
		}
		typedValue = value
	case "bool":
		if value != "true" && value != "false" {
			return fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		typedValue = value == "true"
	}

	// Ensure config directory exists
	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set(key, typedValue)

	configFile := config.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Set %s = %v\n", key, typedValue)
	fmt.Printf("Config saved to %s\n", configFile)

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'seatwise config set' to modify values", configFile)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configContent := `# Seatwise Configuration

# File paths
paths:
  # Flat file holding saved passenger records.
  # Relative paths resolve against the working directory; ~ expands to $HOME.
  # Empty means bookings.txt in the working directory.
  bookings_file: ""

# Logging settings
logging:
  # Enable debug logging
  enabled: true
  # Log level: debug, info, warn, error
  level: info
  # Directory for the log file; empty logs to stderr
  dir: ""

# Interactive menu settings
tui:
  # Show the "O = available, X = booked" legend under the seat map
  show_legend: true
`

	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Println(config.ConfigFile())
	return nil
}

func isValidLogLevel(level string) bool {
	for _, valid := range config.ValidLogLevels() {
		if level == valid {
			return true
		}
	}
	return false
}
