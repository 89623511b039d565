// Package config loads and saves the streakbot TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all streakbot configuration.
type Config struct {
	Telegram TelegramConfig `toml:"telegram"`
	Database DatabaseConfig `toml:"database"`
	Sync     SyncConfig     `toml:"sync"`
	Tracking TrackingConfig `toml:"tracking"`
}

// TelegramConfig holds bot transport settings.
type TelegramConfig struct {
	Token string `toml:"token,omitempty"`
}

// DatabaseConfig holds durable store settings.
type DatabaseConfig struct {
	Path string `toml:"path,omitempty"`
}

// SyncConfig holds background checkpoint cadence settings. Intervals
// are Go duration strings ("1m", "1h").
type SyncConfig struct {
	CheckInterval string `toml:"check_interval"`
	FlushInterval string `toml:"flush_interval"`
}

// TrackingConfig holds streak computation settings.
type TrackingConfig struct {
	FloorDate        string `toml:"floor_date"`        // YYYYMMDD lower bound for all habits
	SuccessThreshold int    `toml:"success_threshold"` // days after which a habit counts as formed
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Sync: SyncConfig{
			CheckInterval: "1m",
			FlushInterval: "1h",
		},
		Tracking: TrackingConfig{
			FloorDate:        "20250927",
			SuccessThreshold: 21,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "streakbot")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "streakbot")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DefaultDBPath returns the XDG-compliant default database location.
func DefaultDBPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "streakbot", "streakbot.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "streakbot", "streakbot.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// GetToken returns the bot token from env var or config, in that order.
func GetToken(cfg Config) string {
	if tok := os.Getenv("STREAKBOT_TOKEN"); tok != "" {
		return tok
	}
	return cfg.Telegram.Token
}

// DBPath returns the configured database path or the XDG default.
func DBPath(cfg Config) string {
	if cfg.Database.Path != "" {
		return cfg.Database.Path
	}
	return DefaultDBPath()
}

// CheckEvery parses the sync check interval, falling back to one minute.
func (s SyncConfig) CheckEvery() time.Duration {
	d, err := time.ParseDuration(s.CheckInterval)
	if err != nil || d <= 0 {
		return time.Minute
	}
	return d
}

// FlushEvery parses the flush interval, falling back to one hour.
func (s SyncConfig) FlushEvery() time.Duration {
	d, err := time.ParseDuration(s.FlushInterval)
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}

// FloorDay parses the configured floor date. An unparseable value falls
// back to the default so streak math never fails on bad config.
func (t TrackingConfig) FloorDay() time.Time {
	parsed, err := time.ParseInLocation("20060102", t.FloorDate, time.Local)
	if err != nil {
		parsed, _ = time.ParseInLocation("20060102", DefaultConfig().Tracking.FloorDate, time.Local)
	}
	return parsed
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
