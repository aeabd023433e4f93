package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/balkashynov/slidegym/internal/models"
)

// StartDayToday selects the current weekday at startup.
const StartDayToday = "today"

// Config holds user-configurable settings.
type Config struct {
	DBPath   string `yaml:"db_path"`
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
	StartDay string `yaml:"start_day"` // a weekday name or "today"
}

// Default returns the default configuration.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dir := filepath.Join(home, ".slidegym")
	return Config{
		DBPath:   filepath.Join(dir, "slidegym.db"),
		LogFile:  filepath.Join(dir, "slidegym.log"),
		LogLevel: "info",
		StartDay: "monday",
	}
}

// Path returns the location of the config file.
func Path() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, "slidegym", "config.yaml"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config path: %w", err)
	}
	return filepath.Join(home, ".config", "slidegym", "config.yaml"), nil
}

// Load reads .env, then the YAML file at path (Path() when empty), then
// SLIDEGYM_* environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		p, err := Path()
		if err != nil {
			return Normalize(applyEnv(cfg)), err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Normalize(applyEnv(cfg)), fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Normalize(applyEnv(Default())), fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	return Normalize(applyEnv(cfg)), nil
}

func applyEnv(cfg Config) Config {
	cfg.DBPath = GetEnv("SLIDEGYM_DB_PATH", cfg.DBPath)
	cfg.LogFile = GetEnv("SLIDEGYM_LOG_FILE", cfg.LogFile)
	cfg.LogLevel = GetEnv("SLIDEGYM_LOG_LEVEL", cfg.LogLevel)
	cfg.StartDay = GetEnv("SLIDEGYM_START_DAY", cfg.StartDay)
	return cfg
}

// Normalize fills blanks with defaults and resets invalid values.
func Normalize(cfg Config) Config {
	def := Default()

	cfg.DBPath = strings.TrimSpace(cfg.DBPath)
	if cfg.DBPath == "" {
		cfg.DBPath = def.DBPath
	}
	cfg.LogFile = strings.TrimSpace(cfg.LogFile)
	if cfg.LogFile == "" {
		cfg.LogFile = def.LogFile
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		cfg.LogLevel = def.LogLevel
	}

	cfg.StartDay = strings.ToLower(strings.TrimSpace(cfg.StartDay))
	if cfg.StartDay != StartDayToday {
		if _, err := models.ParseWeekDay(cfg.StartDay); err != nil {
			cfg.StartDay = def.StartDay
		}
	}
	return cfg
}

// StartDay resolves the configured start day against now.
func StartDay(cfg Config, now time.Time) models.WeekDay {
	cfg = Normalize(cfg)
	if cfg.StartDay == StartDayToday {
		return models.Today(now)
	}
	day, err := models.ParseWeekDay(cfg.StartDay)
	if err != nil {
		return models.Monday
	}
	return day
}

// GetEnv returns the environment value for key, or defaultValue when unset.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
