package systems

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/roguecore/internal/game/components"
	"github.com/mitchelldurbincs/roguecore/internal/game/ecs"
	"github.com/mitchelldurbincs/roguecore/internal/testutil"
)

func TestMonsterAISystem_ObservesWithoutMutating(t *testing.T) {
	m := corridorMap()
	w := ecs.NewWorld()
	spawnViewer(w, 1, 1, 8, true)
	goblin := spawnViewer(w, 6, 1, 8, false)
	w.Names.Add(goblin, components.Name{Name: "Goblin #1"})
	spawnViewer(w, 7, 2, 8, false)

	// monster tag without a viewshed does not participate
	blind := w.CreateEntity()
	w.Positions.Add(blind, components.Position{X: 3, Y: 2})
	w.Monsters.Add(blind, components.Monster{})

	NewVisibilitySystem(testutil.NopLogger()).Run(w, m)

	posBefore := map[ecs.Entity]components.Position{}
	for _, e := range w.Positions.All() {
		p, _ := w.Positions.Get(e)
		posBefore[e] = *p
	}
	revealedBefore := append([]bool(nil), m.Revealed...)

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	count := NewMonsterAISystem(logger).Run(w)

	assert.Equal(t, 2, count)
	for e, before := range posBefore {
		p, _ := w.Positions.Get(e)
		assert.Equal(t, before, *p)
	}
	assert.Equal(t, revealedBefore, m.Revealed)
	assert.Equal(t, 0, w.Pending())

	out := buf.String()
	assert.Contains(t, out, "Monster considers its own existence")
	assert.Contains(t, out, "Goblin #1")
	assert.Contains(t, out, `"component":"monster_ai"`)
	assert.Contains(t, out, `"player_distance":5`)
	assert.Contains(t, out, `"player_distance":6`)
}

func TestMonsterAISystem_NoPlayer(t *testing.T) {
	w := ecs.NewWorld()
	spawnViewer(w, 2, 2, 8, false)

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	assert.Equal(t, 1, NewMonsterAISystem(logger).Run(w))
	assert.Contains(t, buf.String(), "Monster considers its own existence")
	assert.NotContains(t, buf.String(), "player_distance")
}
