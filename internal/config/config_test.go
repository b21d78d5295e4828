package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Paths.BookingsFile != "" {
		t.Errorf("Paths.BookingsFile = %q, want empty", cfg.Paths.BookingsFile)
	}
	if !cfg.Logging.Enabled {
		t.Error("Logging.Enabled = false, want true")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if !cfg.TUI.ShowLegend {
		t.Error("TUI.ShowLegend = false, want true")
	}
}

func TestResolveBookingsFile(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		name string
		file string
		want string
	}{
		{name: "empty uses default name", file: "", want: filepath.Join("/work", "bookings.txt")},
		{name: "relative resolves against base", file: "data/seats.txt", want: filepath.Join("/work", "data", "seats.txt")},
		{name: "absolute kept as is", file: "/var/seatwise/bookings.txt", want: "/var/seatwise/bookings.txt"},
		{name: "tilde expands to home", file: "~/bookings.txt", want: filepath.Join(home, "bookings.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PathsConfig{BookingsFile: tt.file}
			if got := p.ResolveBookingsFile("/work"); got != tt.want {
				t.Errorf("ResolveBookingsFile() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetDefaultsAndLoad(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if !cfg.TUI.ShowLegend {
		t.Error("TUI.ShowLegend = false, want true")
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	SetDefaults()
	viper.Set("logging.level", "loud")

	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted an invalid log level")
	}
}

func TestGetFallsBackToDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	SetDefaults()
	viper.Set("logging.level", "loud")

	cfg := Get()
	if cfg.Logging.Level != "info" {
		t.Errorf("Get() fallback Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("honors XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		if got := ConfigDir(); got != filepath.Join("/tmp/xdg", "seatwise") {
			t.Errorf("ConfigDir() = %q, want %q", got, "/tmp/xdg/seatwise")
		}
	})

	t.Run("falls back to ~/.config", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		got := ConfigDir()
		if !strings.HasSuffix(got, filepath.Join(".config", "seatwise")) && got != ".seatwise" {
			t.Errorf("ConfigDir() = %q, want ~/.config/seatwise", got)
		}
	})
}

func TestConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	want := filepath.Join("/tmp/xdg", "seatwise", "config.yaml")
	if got := ConfigFile(); got != want {
		t.Errorf("ConfigFile() = %q, want %q", got, want)
	}
}
