package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the settings shared by every typedlist command. Values come
// from flags, TYPEDLIST_* environment variables and an optional
// typedlist.yaml, in that order of precedence.
type Config struct {
	Type    string `mapstructure:"type"`
	Input   string `mapstructure:"input"`
	Path    string `mapstructure:"path"`
	Output  string `mapstructure:"output"`
	Verbose bool   `mapstructure:"verbose"`
}

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

var configKeys = []string{"type", "input", "path", "output", "verbose"}

func loadConfig(v *viper.Viper, flags *pflag.FlagSet, file string) (Config, error) {
	for _, key := range configKeys {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return Config{}, fmt.Errorf("bind flag %q: %w", key, err)
		}
	}
	v.SetEnvPrefix("typedlist")
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("typedlist")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || file != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	switch cfg.Output {
	case outputJSON, outputYAML:
	default:
		return Config{}, fmt.Errorf("unsupported output format %q (want %s or %s)", cfg.Output, outputJSON, outputYAML)
	}
	return cfg, nil
}
