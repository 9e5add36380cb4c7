package game

import (
	"math/rand"

	"github.com/leonelquinteros/gotext"

	"github.com/mitchelldurbincs/roguecore/internal/game/components"
	"github.com/mitchelldurbincs/roguecore/internal/game/core"
	"github.com/mitchelldurbincs/roguecore/internal/game/ecs"
)

// MonsterKind is a spawnable monster archetype
type MonsterKind struct {
	Name  string
	Glyph rune
}

var (
	Goblin = MonsterKind{Name: "Goblin", Glyph: 'g'}
	Orc    = MonsterKind{Name: "Orc", Glyph: 'o'}
)

// Label returns the kind's display name in the active locale
func (k MonsterKind) Label() string {
	switch k.Name {
	case "Goblin":
		return gotext.Get("Goblin")
	case "Orc":
		return gotext.Get("Orc")
	}
	return k.Name
}

// Spawner assembles entities from components
type Spawner struct {
	world  *ecs.World
	rng    *rand.Rand
	config GameConfig
}

func NewSpawner(w *ecs.World, rng *rand.Rand, cfg GameConfig) *Spawner {
	return &Spawner{world: w, rng: rng, config: cfg}
}

// Player creates the player entity at c
func (s *Spawner) Player(c core.Coordinate) ecs.Entity {
	e := s.world.CreateEntity()
	s.world.Positions.Add(e, components.PositionAt(c))
	s.world.Renderables.Add(e, components.Renderable{
		Glyph: '@',
		FG:    s.config.PlayerColor,
		BG:    components.Black,
	})
	s.world.Players.Add(e, components.Player{})
	s.world.Viewsheds.Add(e, components.NewViewshed(s.config.PlayerViewRange))
	s.world.Names.Add(e, components.Name{Name: gotext.Get("Player")})
	return e
}

// Monster creates a monster of the given kind at c, numbered n
func (s *Spawner) Monster(kind MonsterKind, c core.Coordinate, n int) ecs.Entity {
	e := s.world.CreateEntity()
	s.world.Positions.Add(e, components.PositionAt(c))
	s.world.Renderables.Add(e, components.Renderable{
		Glyph: kind.Glyph,
		FG:    s.config.MonsterColor,
		BG:    components.Black,
	})
	s.world.Monsters.Add(e, components.Monster{})
	s.world.Viewsheds.Add(e, components.NewViewshed(s.config.MonsterViewRange))
	s.world.Names.Add(e, components.Name{Name: gotext.Get("%s #%d", kind.Label(), n)})
	return e
}

// RandomMonster flips a coin between goblin and orc
func (s *Spawner) RandomMonster(c core.Coordinate, n int) ecs.Entity {
	if s.rng.Intn(2) == 1 {
		return s.Monster(Goblin, c, n)
	}
	return s.Monster(Orc, c, n)
}

// Populate places the player in the start room and, when enabled, one monster
// at the center of every other room. It returns the player and the number of
// monsters spawned.
func (s *Spawner) Populate(m *core.Map) (ecs.Entity, int, error) {
	start, err := m.StartRoom()
	if err != nil {
		return 0, 0, err
	}
	player := s.Player(start.Center())

	if !s.config.SpawnMonsters {
		return player, 0, nil
	}

	monsters := 0
	for i, room := range m.Rooms[1:] {
		s.RandomMonster(room.Center(), i)
		monsters++
	}
	return player, monsters, nil
}
