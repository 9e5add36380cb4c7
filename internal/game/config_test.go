package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/roguecore/internal/config"
	"github.com/mitchelldurbincs/roguecore/internal/game/components"
	"github.com/mitchelldurbincs/roguecore/internal/testutil"
)

func testAppConfig() *config.Config {
	c := &config.Config{}
	c.Game.Map = config.MapConfig{Width: 60, Height: 40, MaxRooms: 12, MinRoomSize: 4, MaxRoomSize: 8}
	c.Game.Seed = 99
	c.Game.Viewshed.Range = 6
	c.Game.Monsters.Enabled = false
	c.Game.Monsters.ViewshedRange = 4
	c.UI.Colors = config.ColorsConfig{
		Floor:   "#111111",
		Wall:    "#222222",
		Player:  "#00ff00",
		Monster: "#0000ff",
	}
	c.Development.RevealMap = true
	return c
}

func TestGameConfigFromConfig(t *testing.T) {
	gc, err := GameConfigFromConfig(testAppConfig(), testutil.NopLogger())
	require.NoError(t, err)

	assert.Equal(t, 60, gc.Map.Width)
	assert.Equal(t, 40, gc.Map.Height)
	assert.Equal(t, 12, gc.Map.MaxRooms)
	assert.Equal(t, 4, gc.Map.MinRoomSize)
	assert.Equal(t, 8, gc.Map.MaxRoomSize)
	assert.Equal(t, int64(99), gc.Seed)
	assert.Nil(t, gc.Rng)
	assert.Equal(t, 6, gc.PlayerViewRange)
	assert.False(t, gc.SpawnMonsters)
	assert.Equal(t, 4, gc.MonsterViewRange)
	assert.Equal(t, components.Green, gc.PlayerColor)
	assert.Equal(t, components.RGB{B: 255}, gc.MonsterColor)
	assert.Equal(t, components.RGB{R: 0x11, G: 0x11, B: 0x11}, gc.Palette.Floor)
	assert.Equal(t, components.RGB{R: 0x22, G: 0x22, B: 0x22}, gc.Palette.Wall)
	assert.True(t, gc.RevealMap)
}

func TestGameConfigFromConfig_BadColors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"player", func(c *config.Config) { c.UI.Colors.Player = "yellow" }},
		{"monster", func(c *config.Config) { c.UI.Colors.Monster = "#12" }},
		{"floor", func(c *config.Config) { c.UI.Colors.Floor = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testAppConfig()
			tt.mutate(c)
			_, err := GameConfigFromConfig(c, testutil.NopLogger())
			assert.Error(t, err)
		})
	}
}

func TestDefaultGameConfig(t *testing.T) {
	gc := DefaultGameConfig()
	assert.Equal(t, 80, gc.Map.Width)
	assert.Equal(t, 50, gc.Map.Height)
	assert.Equal(t, 30, gc.Map.MaxRooms)
	assert.Equal(t, 8, gc.PlayerViewRange)
	assert.True(t, gc.SpawnMonsters)
	assert.Equal(t, components.Yellow, gc.PlayerColor)
	assert.Equal(t, components.Red, gc.MonsterColor)
	assert.NoError(t, gc.Map.Validate())
}
