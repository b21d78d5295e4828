package cmd

import (
	"strings"

	"github.com/seatwise/seatwise/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "seatwise",
	Short: "Airline seat booking simulator",
	Long: `Seatwise manages seat bookings for a single flight with a fixed
5-row by 6-column cabin. Run it without arguments for the interactive
menu, or use the subcommands for one-shot operations against the
bookings file.`,
	RunE: runStart,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/seatwise/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.PersistentFlags().StringP("file", "f", "", "bookings file (default is ./bookings.txt)")
	_ = viper.BindPFlag("paths.bookings_file", rootCmd.PersistentFlags().Lookup("file"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/seatwise")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SEATWISE")
	// Replace dots with underscores for nested keys in env vars
	// e.g., SEATWISE_PATHS_BOOKINGS_FILE for paths.bookings_file
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
