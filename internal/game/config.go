package game

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/roguecore/internal/config"
	"github.com/mitchelldurbincs/roguecore/internal/game/components"
	"github.com/mitchelldurbincs/roguecore/internal/game/mapgen"
	"github.com/mitchelldurbincs/roguecore/internal/game/view"
)

// GameConfig holds everything needed to create an engine
type GameConfig struct {
	Map mapgen.MapConfig

	// Seed feeds the RNG when Rng is nil. 0 picks a time-based seed.
	Seed int64
	Rng  *rand.Rand

	// SessionID stamps every published event. Generated when empty.
	SessionID string

	PlayerViewRange  int
	SpawnMonsters    bool
	MonsterViewRange int

	PlayerColor  components.RGB
	MonsterColor components.RGB
	Palette      view.Palette

	// RevealMap makes the engine's renderers ignore fog of war
	RevealMap bool

	Logger zerolog.Logger
}

// DefaultGameConfig returns the stock 80x50 dungeon
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Map:              mapgen.DefaultMapConfig(80, 50),
		PlayerViewRange:  8,
		SpawnMonsters:    true,
		MonsterViewRange: 8,
		PlayerColor:      components.Yellow,
		MonsterColor:     components.Red,
		Palette:          view.DefaultPalette(),
		Logger:           zerolog.Nop(),
	}
}

// GameConfigFromConfig maps the application config onto an engine config
func GameConfigFromConfig(c *config.Config, logger zerolog.Logger) (GameConfig, error) {
	gc := DefaultGameConfig()
	gc.Map = mapgen.MapConfig{
		Width:       c.Game.Map.Width,
		Height:      c.Game.Map.Height,
		MaxRooms:    c.Game.Map.MaxRooms,
		MinRoomSize: c.Game.Map.MinRoomSize,
		MaxRoomSize: c.Game.Map.MaxRoomSize,
	}
	gc.Seed = c.Game.Seed
	gc.PlayerViewRange = c.Game.Viewshed.Range
	gc.SpawnMonsters = c.Game.Monsters.Enabled
	gc.MonsterViewRange = c.Game.Monsters.ViewshedRange
	gc.RevealMap = c.Development.RevealMap
	gc.Logger = logger

	var err error
	if gc.PlayerColor, err = components.ParseHex(c.UI.Colors.Player); err != nil {
		return gc, fmt.Errorf("player color: %w", err)
	}
	if gc.MonsterColor, err = components.ParseHex(c.UI.Colors.Monster); err != nil {
		return gc, fmt.Errorf("monster color: %w", err)
	}
	if gc.Palette, err = view.PaletteFromConfig(c.UI.Colors); err != nil {
		return gc, err
	}

	return gc, nil
}
