package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "LOOTCORE_CONFIG"

// DefaultConfigPath is used when EnvConfigPath is not set.
const DefaultConfigPath = "config/lootcore.yaml"

// LootServer holds all configuration of the loot engine tools.
type LootServer struct {
	LogLevel string `yaml:"log_level"`

	// Database
	Database DatabaseConfig `yaml:"database"`

	Rates         Rates  `yaml:"rates"`
	MaxSkillValue int32  `yaml:"max_skill_value"`
	ContentPath   string `yaml:"content_path"` // YAML content pack

	// Stores lists the loot tables to load; empty means all of them.
	Stores []string `yaml:"stores"`

	Metrics MetricsConfig `yaml:"metrics"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Rates holds the global drop multipliers.
type Rates struct {
	DropItems float64 `yaml:"drop_items"`
	DropMoney float64 `yaml:"drop_money"`
}

// MetricsConfig toggles the OpenTelemetry meter provider.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultLootServer returns LootServer config with sensible defaults.
func DefaultLootServer() LootServer {
	return LootServer{
		LogLevel: "info",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "lootcore",
			Password: "lootcore",
			DBName:   "lootcore",
			SSLMode:  "disable",
		},
		Rates: Rates{
			DropItems: 1.0,
			DropMoney: 1.0,
		},
		MaxSkillValue: 375,
		ContentPath:   "config/content.yaml",
	}
}

// LoadLootServer loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadLootServer(path string) (LootServer, error) {
	cfg := DefaultLootServer()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Path returns the config location from EnvConfigPath or the default.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultConfigPath
}

// Validate rejects values the engine cannot work with.
func (c LootServer) Validate() error {
	if c.Rates.DropItems < 0 || c.Rates.DropMoney < 0 {
		return fmt.Errorf("negative drop rate (items=%v, money=%v)", c.Rates.DropItems, c.Rates.DropMoney)
	}
	if c.MaxSkillValue < 0 {
		return fmt.Errorf("negative max_skill_value %d", c.MaxSkillValue)
	}
	return nil
}

// ParseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
