package ecs

import (
	"github.com/mitchelldurbincs/roguecore/internal/game/components"
)

// Command is a structural change queued during a step and applied by Maintain
type Command func(w *World)

// World owns every component store and the entity ID sequence
type World struct {
	Positions   *Store[components.Position]
	Viewsheds   *Store[components.Viewshed]
	Renderables *Store[components.Renderable]
	Players     *Store[components.Player]
	Monsters    *Store[components.Monster]
	Names       *Store[components.Name]

	stores  []QueryableStore
	alive   map[Entity]struct{}
	nextID  Entity
	pending []Command
}

// NewWorld creates a world with empty stores
func NewWorld() *World {
	w := &World{
		Positions:   NewStore[components.Position](),
		Viewsheds:   NewStore[components.Viewshed](),
		Renderables: NewStore[components.Renderable](),
		Players:     NewStore[components.Player](),
		Monsters:    NewStore[components.Monster](),
		Names:       NewStore[components.Name](),
		alive:       make(map[Entity]struct{}),
		nextID:      1,
	}
	w.stores = []QueryableStore{w.Positions, w.Viewsheds, w.Renderables, w.Players, w.Monsters, w.Names}
	return w
}

// CreateEntity allocates a fresh entity ID. IDs are never reused.
func (w *World) CreateEntity() Entity {
	e := w.nextID
	w.nextID++
	w.alive[e] = struct{}{}
	return e
}

// DestroyEntity strips every component from e
func (w *World) DestroyEntity(e Entity) {
	for _, s := range w.stores {
		s.Remove(e)
	}
	delete(w.alive, e)
}

// Alive reports whether e was created and not destroyed
func (w *World) Alive(e Entity) bool {
	_, ok := w.alive[e]
	return ok
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.alive)
}

// SetPosition writes e's position and invalidates its viewshed
func (w *World) SetPosition(e Entity, p components.Position) {
	w.Positions.Add(e, p)
	if vs, ok := w.Viewsheds.Get(e); ok {
		vs.Dirty = true
	}
}

// Defer queues a structural change until the next Maintain
func (w *World) Defer(cmd Command) {
	w.pending = append(w.pending, cmd)
}

// Pending returns the number of queued commands
func (w *World) Pending() int {
	return len(w.pending)
}

// Maintain applies queued commands in order and returns how many ran.
// Commands queued while maintaining wait for the next call.
func (w *World) Maintain() int {
	batch := w.pending
	w.pending = nil
	for _, cmd := range batch {
		cmd(w)
	}
	return len(batch)
}
