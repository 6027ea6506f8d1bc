package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "TASKFACTORY"

// Config keeps runtime settings for the task factory.
type Config struct {
	LogLevel    zapcore.Level
	LogEncoding string
}

// Load reads configuration from TASKFACTORY_* environment variables with sane defaults.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	var cfg Config

	level, err := zapcore.ParseLevel(strings.TrimSpace(v.GetString("log.level")))
	if err != nil {
		return cfg, fmt.Errorf("log level: %w", err)
	}
	cfg.LogLevel = level

	cfg.LogEncoding = strings.ToLower(strings.TrimSpace(v.GetString("log.encoding")))
	switch cfg.LogEncoding {
	case "console", "json":
	default:
		return cfg, fmt.Errorf("log encoding %q, expected console or json", cfg.LogEncoding)
	}

	return cfg, nil
}
