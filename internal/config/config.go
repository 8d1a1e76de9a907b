// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Hall    HallConfig    `toml:"hall"`
	Storage StorageConfig `toml:"storage"`
	Report  ReportConfig  `toml:"report"`
	UI      UIConfig      `toml:"ui"`
}

// HallConfig describes the bookable hall and its operating hours.
type HallConfig struct {
	Name     string `toml:"name"`      // display name for headers
	DayStart string `toml:"day_start"` // first bookable slot, e.g. "08:00"
	DayEnd   string `toml:"day_end"`   // last bookable slot, e.g. "18:00"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// ReportConfig holds report export settings.
type ReportConfig struct {
	Path string `toml:"path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha" or "latte"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Hall: HallConfig{
			Name:     "Meeting Hall",
			DayStart: "08:00",
			DayEnd:   "18:00",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		Report: ReportConfig{
			Path: "bookings_report.txt",
		},
		UI: UIConfig{
			Theme: "mocha",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "hallbook.db"
	}
	return filepath.Join(home, ".local", "share", "hallbook", "hallbook.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "hallbook", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Report.Path = expandPath(cfg.Report.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HALLBOOK_HALL_NAME"); v != "" {
		cfg.Hall.Name = v
	}
	if v := os.Getenv("HALLBOOK_DAY_START"); v != "" {
		cfg.Hall.DayStart = v
	}
	if v := os.Getenv("HALLBOOK_DAY_END"); v != "" {
		cfg.Hall.DayEnd = v
	}
	if v := os.Getenv("HALLBOOK_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("HALLBOOK_REPORT_PATH"); v != "" {
		cfg.Report.Path = v
	}
	if v := os.Getenv("HALLBOOK_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Hall.Name == "" {
		return errors.New("hall name must be set")
	}
	if err := validateTime(c.Hall.DayStart, "day_start"); err != nil {
		return err
	}
	if err := validateTime(c.Hall.DayEnd, "day_end"); err != nil {
		return err
	}
	if c.Hall.DayStart >= c.Hall.DayEnd {
		return errors.New("day_start must be before day_end")
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// validateTime checks if a time string is in HH:MM format.
func validateTime(t, field string) error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	hour := t[0:2]
	min := t[3:5]
	if !isDigits(hour) || !isDigits(min) {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	return nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
