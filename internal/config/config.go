// Package config loads the inspection surface's configuration: listen
// address, log level, and metrics toggle. The devpath decoder itself reads
// no configuration and performs no I/O; this package only configures the
// HTTP server (devpathd) around it.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-logr/logr"
	"github.com/spf13/viper"
)

// Config is the mapstructure-tagged configuration for devpathd, loaded by
// viper the way the teacher's internal/config does.
type Config struct {
	Address        string `mapstructure:"address"`
	Port           int    `mapstructure:"port"`
	LogLevel       string `mapstructure:"log_level"`
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`

	Log logr.Logger `mapstructure:"-"`
}

// NewConfig loads configuration from (in order of precedence) values set by
// the caller via viper.Set, environment variables prefixed DEVPATH_, and a
// config file named "devpathd" on the usual search paths, falling back to
// defaults. It watches the config file for changes and reloads the log
// level live.
func NewConfig() (*Config, error) {
	viper.SetConfigName("devpathd")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/devpathd/")

	if confDir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(confDir, "devpathd"))
	}

	viper.SetEnvPrefix("devpath")
	viper.AutomaticEnv()

	viper.SetDefault("address", "0.0.0.0")
	viper.SetDefault("port", 8080)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("metrics_enabled", true)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.Log = defaultLogger(cfg.LogLevel)

	viper.OnConfigChange(func(in fsnotify.Event) {
		level := strings.ToLower(viper.GetString("log_level"))
		cfg.Log = defaultLogger(level)
	})
	viper.WatchConfig()

	return cfg, nil
}

// defaultLogger wraps a JSON slog handler in a logr.Logger, the same
// adapter the teacher's internal/config.defaultLogger uses.
func defaultLogger(level string) logr.Logger {
	opts := &slog.HandlerOptions{}
	switch strings.ToLower(level) {
	case "debug":
		opts.Level = slog.LevelDebug
	default:
		opts.Level = slog.LevelInfo
	}
	log := slog.New(slog.NewJSONHandler(os.Stdout, opts))
	return logr.FromSlogHandler(log.Handler())
}
