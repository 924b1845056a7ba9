// Package config loads tool configuration from an optional .goplan.yaml file
// and GOPLAN_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the user-tunable defaults of the tool
type Config struct {
	// Defaults for new plans
	RoomWidth  float64 `mapstructure:"room_width"`
	RoomHeight float64 `mapstructure:"room_height"`
	RoomType   string  `mapstructure:"room_type"`

	// GUI window size in pixels
	WindowWidth  int `mapstructure:"window_width"`
	WindowHeight int `mapstructure:"window_height"`
}

// Load reads the configuration. An explicit file path is required to exist;
// otherwise .goplan.yaml is searched in the working directory and the home
// directory, and missing files fall back to defaults.
func Load(file string) (Config, error) {
	v := viper.New()

	v.SetDefault("room_width", 400.0)
	v.SetDefault("room_height", 300.0)
	v.SetDefault("room_type", "")
	v.SetDefault("window_width", 1200)
	v.SetDefault("window_height", 800)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".goplan")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	v.SetEnvPrefix("GOPLAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if file != "" {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.RoomWidth <= 0 || cfg.RoomHeight <= 0 {
		return Config{}, fmt.Errorf("configured room dimensions must be positive, got %gx%g", cfg.RoomWidth, cfg.RoomHeight)
	}

	return cfg, nil
}
