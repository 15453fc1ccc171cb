package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"pokerrank/internal/util"
)

// Config provides configuration for the poker ranking tools
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		Format            string `yaml:"format" envconfig:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	// MaxHands is the maximum number of hands accepted in a single /best request
	MaxHands int `yaml:"maxHands" envconfig:"max_hands"`
}

var config Config

// DefaultConfig returns the configuration used when no file or environment overrides exist
func DefaultConfig() Config {
	cfg := Config{
		Addr:     ":5000",
		MaxHands: 1000,
	}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error, the defaults are used instead
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("POKERRANK_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("pokerrank", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
