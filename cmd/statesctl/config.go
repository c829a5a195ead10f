package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "STATESCTL"

	cfgKeyBaseURL = "base_url"
	cfgKeyAPIKey  = "api_key"

	defaultBaseURL = "http://localhost:8080"
)

// loadConfig resolves settings with flags > env > config file > defaults.
// An empty path skips the config file entirely
func loadConfig(path string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBaseURL, defaultBaseURL)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.BindPFlag(cfgKeyBaseURL, flags.Lookup("base-url")); err != nil {
		return nil, fmt.Errorf("bind base-url flag: %w", err)
	}
	if err := v.BindPFlag(cfgKeyAPIKey, flags.Lookup("api-key")); err != nil {
		return nil, fmt.Errorf("bind api-key flag: %w", err)
	}

	if path == "" {
		return v, nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file %s does not exist", path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
