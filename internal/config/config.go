package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/roguecore/internal/game/components"
)

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	UI          UIConfig          `mapstructure:"ui"`
	Demo        DemoConfig        `mapstructure:"demo"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// GameConfig holds simulation settings
type GameConfig struct {
	Map      MapConfig      `mapstructure:"map"`
	Seed     int64          `mapstructure:"seed"` // 0 picks a time-based seed
	Viewshed ViewshedConfig `mapstructure:"viewshed"`
	Monsters MonstersConfig `mapstructure:"monsters"`
}

// MapConfig holds map generation settings
type MapConfig struct {
	Width       int `mapstructure:"width"`
	Height      int `mapstructure:"height"`
	MaxRooms    int `mapstructure:"max_rooms"`
	MinRoomSize int `mapstructure:"min_room_size"`
	MaxRoomSize int `mapstructure:"max_room_size"`
}

// ViewshedConfig holds the player's field of view settings
type ViewshedConfig struct {
	Range int `mapstructure:"range"`
}

// MonstersConfig holds monster spawning settings
type MonstersConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	ViewshedRange int  `mapstructure:"viewshed_range"`
}

// LoggingConfig holds zerolog output settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

// UIConfig holds client configuration
type UIConfig struct {
	Window WindowConfig `mapstructure:"window"`
	Game   UIGameConfig `mapstructure:"game"`
	Colors ColorsConfig `mapstructure:"colors"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Title string `mapstructure:"title"`
}

// UIGameConfig holds tile rendering settings
type UIGameConfig struct {
	TileSize int `mapstructure:"tile_size"`
	Scale    int `mapstructure:"scale"`
}

// ColorsConfig holds "#rrggbb" colors for map glyphs
type ColorsConfig struct {
	Floor   string `mapstructure:"floor"`
	Wall    string `mapstructure:"wall"`
	Player  string `mapstructure:"player"`
	Monster string `mapstructure:"monster"`
}

// DemoConfig holds headless demo settings
type DemoConfig struct {
	MaxTurns int `mapstructure:"max_turns"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	RevealMap bool `mapstructure:"reveal_map"`
}

var (
	// Global config instance. Readers get an immutable snapshot; Set and
	// reloads publish a fresh one.
	current atomic.Pointer[Config]
	v       *viper.Viper
	// mu serializes viper access between Set and the watcher goroutine
	mu sync.Mutex
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("game.map.width", 80)
	v.SetDefault("game.map.height", 50)
	v.SetDefault("game.map.max_rooms", 30)
	v.SetDefault("game.map.min_room_size", 6)
	v.SetDefault("game.map.max_room_size", 10)
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.viewshed.range", 8)
	v.SetDefault("game.monsters.enabled", true)
	v.SetDefault("game.monsters.viewshed_range", 8)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("ui.window.title", "Roguecore")
	v.SetDefault("ui.game.tile_size", 12)
	v.SetDefault("ui.game.scale", 1)
	v.SetDefault("ui.colors.floor", "#008080")
	v.SetDefault("ui.colors.wall", "#00ff00")
	v.SetDefault("ui.colors.player", "#ffff00")
	v.SetDefault("ui.colors.monster", "#ff0000")

	v.SetDefault("demo.max_turns", 50)

	v.SetDefault("development.reveal_map", false)
}

// Init initializes the configuration
func Init(configPath string) error {
	mu.Lock()
	defer mu.Unlock()

	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/roguecore")
	}

	v.SetEnvPrefix("RGC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath == "" && !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Missing file: defaults and environment only
	}

	next, err := decode()
	if err != nil {
		return err
	}
	current.Store(next)
	return nil
}

// Get returns the current config snapshot. A snapshot is never modified by
// later Set calls or reloads; call Get again to observe them.
func Get() *Config {
	if c := current.Load(); c != nil {
		return c
	}
	if err := Init(""); err != nil {
		panic("failed to initialize config with defaults: " + err.Error())
	}
	return current.Load()
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// Set allows runtime config updates
func Set(key string, value interface{}) error {
	mu.Lock()
	defer mu.Unlock()

	v.Set(key, value)
	next, err := decode()
	if err != nil {
		return err
	}
	current.Store(next)
	return nil
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	mu.Lock()
	defer mu.Unlock()
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. onChange receives the
// validation error, if any; an invalid file leaves the previous values in place.
func WatchConfig(onChange func(error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		err := reload()
		if onChange != nil {
			onChange(err)
		}
	})
	v.WatchConfig()
}

func reload() error {
	mu.Lock()
	defer mu.Unlock()

	next, err := decode()
	if err != nil {
		return err
	}
	current.Store(next)
	return nil
}

// decode builds and validates a new snapshot from viper. Callers hold mu.
func decode() (*Config, error) {
	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(next); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return next, nil
}

// Validate validates the configuration values
func Validate(c *Config) error {
	m := c.Game.Map
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("game.map dimensions must be positive")
	}
	if m.MaxRooms < 1 {
		return fmt.Errorf("game.map.max_rooms must be at least 1")
	}
	if m.MinRoomSize < 2 {
		return fmt.Errorf("game.map.min_room_size must be at least 2")
	}
	if m.MaxRoomSize < m.MinRoomSize {
		return fmt.Errorf("game.map.max_room_size must not be below game.map.min_room_size")
	}
	if c.Game.Viewshed.Range < 0 {
		return fmt.Errorf("game.viewshed.range must be non-negative")
	}
	if c.Game.Monsters.ViewshedRange < 0 {
		return fmt.Errorf("game.monsters.viewshed_range must be non-negative")
	}

	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}

	if c.UI.Game.TileSize <= 0 {
		return fmt.Errorf("ui.game.tile_size must be positive")
	}
	if c.UI.Game.Scale <= 0 {
		return fmt.Errorf("ui.game.scale must be positive")
	}
	colors := map[string]string{
		"ui.colors.floor":   c.UI.Colors.Floor,
		"ui.colors.wall":    c.UI.Colors.Wall,
		"ui.colors.player":  c.UI.Colors.Player,
		"ui.colors.monster": c.UI.Colors.Monster,
	}
	for key, value := range colors {
		if _, err := components.ParseHex(value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}

	if c.Demo.MaxTurns <= 0 {
		return fmt.Errorf("demo.max_turns must be positive")
	}

	return nil
}
