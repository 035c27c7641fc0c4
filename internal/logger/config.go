package logger

import "fmt"

// Config represents logging configuration
type Config struct {
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"` // MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
	Compress   bool   `mapstructure:"compress"`
	Level      string `mapstructure:"level"` // debug, info, warn, error
	Name       string `mapstructure:"name"`
}

// DefaultConfig returns console-only info logging
func DefaultConfig() *Config {
	return &Config{
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     30,
		Level:      "info",
	}
}

// SetDefaults fills zero values from DefaultConfig
func (cfg *Config) SetDefaults() *Config {
	d := DefaultConfig()
	c := *cfg
	if c.MaxSize == 0 {
		c.MaxSize = d.MaxSize
	}
	if c.MaxBackups == 0 {
		c.MaxBackups = d.MaxBackups
	}
	if c.MaxAge == 0 {
		c.MaxAge = d.MaxAge
	}
	if c.Level == "" {
		c.Level = d.Level
	}
	return &c
}

// Validate validates logging configuration
func (cfg *Config) Validate() error {
	if cfg.MaxSize <= 0 {
		return fmt.Errorf("max_size must be positive")
	}
	switch cfg.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", cfg.Level)
	}
	return nil
}
