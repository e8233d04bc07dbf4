package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the CLI's settings. Values come from the config file,
// SPECGEN_* environment variables, and defaults, in that order of
// precedence.
type Config struct {
	APIBaseURL string `mapstructure:"api_base_url"`
	TokenPath  string `mapstructure:"token_path"`
	ExportDir  string `mapstructure:"export_dir"`
}

// Dir returns the directory holding the config file and token,
// creating nothing. Defaults to ~/.config/specgen.
func Dir() (string, error) {
	if dir := os.Getenv("SPECGEN_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not determine config directory: %w", err)
	}
	return filepath.Join(base, "specgen"), nil
}

// Load reads the configuration, tolerating a missing config file.
func Load() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("SPECGEN")
	v.AutomaticEnv()

	v.SetDefault("api_base_url", "http://localhost:9090")
	v.SetDefault("token_path", filepath.Join(dir, "token"))
	v.SetDefault("export_dir", ".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return cfg, nil
}
