package config

import "github.com/spf13/viper"

// Config data config struct
type Config struct {
	// Environment is debug, test or production; it selects the status API's gin mode
	Environment string `mapstructure:"environment" validate:"omitempty,oneof=debug test production"`
	*Elasticsearch
}

// SetDefaults registers data defaults on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data.environment", "production")
	setElasticsearchDefaults(v)
}

// GetConfig reads data configurations
func GetConfig(v *viper.Viper) *Config {
	return &Config{
		Environment:   v.GetString("data.environment"),
		Elasticsearch: getElasticsearchConfigs(v),
	}
}
