package config

import (
	"errors"
	"strings"

	"github.com/randomfusion/sdk/visuals"
	"github.com/spf13/viper"
)

type Config struct {
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Style      string `mapstructure:"style"`
	GridSize   int    `mapstructure:"grid_size"`
	NumCircles int    `mapstructure:"num_circles"`
	BaseStroke int    `mapstructure:"base_stroke"`
	CachePath  string `mapstructure:"cache_path"`
	OutputDir  string `mapstructure:"output_dir"`
	Debug      bool   `mapstructure:"debug"`
}

// Load reads randomfusion.yaml from path (and the working directory) and
// merges RANDOMFUSION_ environment overrides on top of the defaults. A
// missing config file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigName("randomfusion")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")
	v.SetEnvPrefix("RANDOMFUSION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := visuals.DefaultOptions()
	v.SetDefault("width", defaults.Width)
	v.SetDefault("height", defaults.Height)
	v.SetDefault("style", string(visuals.ColorBlocksStyle))
	v.SetDefault("grid_size", defaults.GridSize)
	v.SetDefault("num_circles", defaults.NumCircles)
	v.SetDefault("base_stroke", defaults.BaseStroke)
	v.SetDefault("cache_path", "randomfusion.db")
	v.SetDefault("output_dir", ".")
	v.SetDefault("debug", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options converts the configured defaults into generator options.
func (c Config) Options() visuals.Options {
	return visuals.Options{
		Width:      c.Width,
		Height:     c.Height,
		GridSize:   c.GridSize,
		NumCircles: c.NumCircles,
		BaseStroke: c.BaseStroke,
	}
}
