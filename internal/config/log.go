package config

import (
	"esconnector/internal/logger"

	"github.com/spf13/viper"
)

func setLogDefaults(v *viper.Viper) {
	d := logger.DefaultConfig()
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", d.MaxSize)
	v.SetDefault("log.max_backups", d.MaxBackups)
	v.SetDefault("log.max_age", d.MaxAge)
	v.SetDefault("log.compress", false)
	v.SetDefault("log.level", d.Level)
	v.SetDefault("log.name", AppName)
}

// getLogConfig reads logging configuration
func getLogConfig(v *viper.Viper) *logger.Config {
	return &logger.Config{
		File:       v.GetString("log.file"),
		MaxSize:    v.GetInt("log.max_size"),
		MaxBackups: v.GetInt("log.max_backups"),
		MaxAge:     v.GetInt("log.max_age"),
		Compress:   v.GetBool("log.compress"),
		Level:      v.GetString("log.level"),
		Name:       v.GetString("log.name"),
	}
}
