package config

import (
	"fmt"
	"strings"
	"time"

	dataconfig "esconnector/internal/data/config"
	"esconnector/internal/logger"
	"esconnector/internal/validator"

	"github.com/spf13/viper"
)

var (
	AppName   = "esconnector"
	EnvPrefix = "ESCONNECTOR"
)

// Config represents the complete application configuration
type Config struct {
	Data *dataconfig.Config `mapstructure:"data"`
	API  *APIConfig         `mapstructure:"api"`
	Log  *logger.Config     `mapstructure:"log"`
}

// APIConfig represents the status API configuration
type APIConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Address         string        `mapstructure:"address" validate:"required_if=Enabled true"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gte=0"`
}

// LoadConfig loads configuration from the YAML file at path, then applies
// ESCONNECTOR_* environment overrides. An empty path means env and defaults only.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Data: dataconfig.GetConfig(v),
		API:  getAPIConfig(v),
		Log:  getLogConfig(v),
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults registers defaults for every key
func setDefaults(v *viper.Viper) {
	dataconfig.SetDefaults(v)

	v.SetDefault("api.enabled", false)
	v.SetDefault("api.address", ":8080")
	v.SetDefault("api.read_timeout", 10*time.Second)
	v.SetDefault("api.write_timeout", 10*time.Second)
	v.SetDefault("api.shutdown_timeout", 30*time.Second)

	setLogDefaults(v)
}

func getAPIConfig(v *viper.Viper) *APIConfig {
	return &APIConfig{
		Enabled:         v.GetBool("api.enabled"),
		Address:         v.GetString("api.address"),
		ReadTimeout:     v.GetDuration("api.read_timeout"),
		WriteTimeout:    v.GetDuration("api.write_timeout"),
		ShutdownTimeout: v.GetDuration("api.shutdown_timeout"),
	}
}

// validateConfig validates configuration
func validateConfig(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		return err
	}
	if err := config.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}
