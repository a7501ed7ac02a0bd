package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "WORKTIME"

// Config holds the tracker settings.
type Config struct {
	Folder      string        `mapstructure:"folder"`
	File        string        `mapstructure:"file"`
	ShowEmpty   bool          `mapstructure:"show_empty"`
	Notify      bool          `mapstructure:"notify"`
	Verbose     bool          `mapstructure:"verbose"`
	TargetToday time.Duration `mapstructure:"target_today"`
	TargetWeek  time.Duration `mapstructure:"target_week"`
}

// Path returns the full path of the log file.
func (c Config) Path() string {
	return filepath.Join(c.Folder, c.File)
}

// Load reads config.yaml from the working directory or ~/.worktime, then
// overlays WORKTIME_* environment variables. A missing file is not an error.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return load(home, ".", filepath.Join(home, ".worktime"))
}

func load(home string, paths ...string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetDefault("folder", filepath.Join(home, ".worktime", "timestamps"))
	v.SetDefault("file", "timestamps.json")
	v.SetDefault("show_empty", false)
	v.SetDefault("notify", false)
	v.SetDefault("verbose", false)
	v.SetDefault("target_today", 8*time.Hour)
	v.SetDefault("target_week", 40*time.Hour)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.File == "" {
		return Config{}, fmt.Errorf("config: file name cannot be empty")
	}
	return cfg, nil
}
