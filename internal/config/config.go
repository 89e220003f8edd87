package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the spirego binaries.
type Config struct {
	// Logging: debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// Game rules
	Rules Rules `yaml:"rules"`

	// Run history storage
	Database DatabaseConfig `yaml:"database"`

	// Headless run simulator
	Simulator Simulator `yaml:"simulator"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
	MaxConns int32  `yaml:"max_conns"` // 0 = pgx default
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Default returns Config with sensible defaults.
func Default() Config {
	return Config{
		LogLevel:  "info",
		Rules:     DefaultRules(),
		Simulator: DefaultSimulator(),
		Database: DatabaseConfig{
			Enabled:  false,
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "spirego",
			Password: "spirego",
			DBName:   "spirego",
			SSLMode:  "disable",
			MaxConns: 4,
		},
	}
}

// Load loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

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
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects values the engine cannot run with.
func (c Config) Validate() error {
	r := c.Rules
	switch {
	case r.StartingEnergy < 0:
		return fmt.Errorf("rules.starting_energy must be >= 0, got %d", r.StartingEnergy)
	case r.HandSize < 1:
		return fmt.Errorf("rules.hand_size must be >= 1, got %d", r.HandSize)
	case r.MapWidth < 1:
		return fmt.Errorf("rules.map_width must be >= 1, got %d", r.MapWidth)
	case r.MapHeight < 2:
		return fmt.Errorf("rules.map_height must be >= 2, got %d", r.MapHeight)
	case r.Acts < 1:
		return fmt.Errorf("rules.acts must be >= 1, got %d", r.Acts)
	case r.MaxPotionSlots < 0:
		return fmt.Errorf("rules.max_potion_slots must be >= 0, got %d", r.MaxPotionSlots)
	}

	s := c.Simulator
	switch {
	case s.Runs < 0:
		return fmt.Errorf("simulator.runs must be >= 0, got %d", s.Runs)
	case s.Workers < 1:
		return fmt.Errorf("simulator.workers must be >= 1, got %d", s.Workers)
	case s.MaxTurnsPerCombat < 1:
		return fmt.Errorf("simulator.max_turns_per_combat must be >= 1, got %d", s.MaxTurnsPerCombat)
	}

	if c.Database.MaxConns < 0 {
		return fmt.Errorf("database.max_conns must be >= 0, got %d", c.Database.MaxConns)
	}
	return nil
}
