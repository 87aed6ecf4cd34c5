package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Minesweeper MinesweeperConfig `mapstructure:"minesweeper"`
	Demo        DemoConfig        `mapstructure:"demo"`
	Log         LogConfig         `mapstructure:"log"`
}

// MinesweeperConfig holds the minesweeper board settings
type MinesweeperConfig struct {
	Height int `mapstructure:"height"`
	Width  int `mapstructure:"width"`
	Mines  int `mapstructure:"mines"`
}

// DemoConfig holds settings for the demo game loops
type DemoConfig struct {
	Games    int `mapstructure:"games"`
	MaxMoves int `mapstructure:"max_moves"`

	// Seed 0 means seed from the clock.
	Seed int64 `mapstructure:"seed"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Minesweeper defaults
	v.SetDefault("minesweeper.height", 8)
	v.SetDefault("minesweeper.width", 8)
	v.SetDefault("minesweeper.mines", 8)

	// Demo defaults
	v.SetDefault("demo.games", 1)
	v.SetDefault("demo.max_moves", 100)
	v.SetDefault("demo.seed", 0)

	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("GRIDMIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file. A missing file is fine, defaults apply; a
	// present but unreadable file is not.
	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("error reading config file: %w", err)
			}
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal into config struct
	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Validate configuration
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// WatchConfig enables hot-reloading of the config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		// Re-unmarshal on change
		if err := v.Unmarshal(cfg); err != nil {
			return
		}
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Minesweeper.Height <= 0 {
		return fmt.Errorf("minesweeper.height must be positive")
	}
	if c.Minesweeper.Width <= 0 {
		return fmt.Errorf("minesweeper.width must be positive")
	}
	if c.Minesweeper.Mines < 0 {
		return fmt.Errorf("minesweeper.mines must be non-negative")
	}
	if c.Minesweeper.Mines >= c.Minesweeper.Height*c.Minesweeper.Width {
		return fmt.Errorf("minesweeper.mines must leave at least one clear cell")
	}

	if c.Demo.Games < 1 {
		return fmt.Errorf("demo.games must be at least 1")
	}
	if c.Demo.MaxMoves < 1 {
		return fmt.Errorf("demo.max_moves must be at least 1")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json")
	}

	return nil
}
