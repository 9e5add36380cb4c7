// Package ecs is the entity-component substrate: typed sparse-set stores and a
// world that owns them. The world is driven from a single goroutine and is not
// safe for concurrent use.
package ecs

// Entity is an opaque identifier; all entity state lives in stores
type Entity uint64

// AnyStore provides type-erased operations for lifecycle management
type AnyStore interface {
	Remove(e Entity)
	Has(e Entity) bool
	Count() int
	Clear()
}

// QueryableStore extends AnyStore with the listing needed by queries
type QueryableStore interface {
	AnyStore
	All() []Entity
}

// Store is a generic container for a specific component type T.
// Components live in a dense slice so iteration stays cache-friendly.
type Store[T any] struct {
	data     []T
	entities []Entity // entities[i] owns data[i]
	index    map[Entity]int
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		data:     make([]T, 0, 64),
		entities: make([]Entity, 0, 64),
		index:    make(map[Entity]int),
	}
}

// Add inserts or replaces the component for an entity
func (s *Store[T]) Add(e Entity, val T) {
	if i, ok := s.index[e]; ok {
		s.data[i] = val
		return
	}
	s.index[e] = len(s.data)
	s.data = append(s.data, val)
	s.entities = append(s.entities, e)
}

// Get returns a pointer to the entity's component. The pointer is only valid
// until the next Add or Remove on this store.
func (s *Store[T]) Get(e Entity) (*T, bool) {
	i, ok := s.index[e]
	if !ok {
		return nil, false
	}
	return &s.data[i], true
}

// Remove deletes the entity's component, swapping the last element into its slot
func (s *Store[T]) Remove(e Entity) {
	i, ok := s.index[e]
	if !ok {
		return
	}
	last := len(s.data) - 1
	if i != last {
		s.data[i] = s.data[last]
		s.entities[i] = s.entities[last]
		s.index[s.entities[i]] = i
	}
	var zero T
	s.data[last] = zero
	s.data = s.data[:last]
	s.entities = s.entities[:last]
	delete(s.index, e)
}

// Has checks if entity has this component
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.index[e]
	return ok
}

// All returns a copy of the entities holding this component
func (s *Store[T]) All() []Entity {
	result := make([]Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.data = s.data[:0]
	s.entities = s.entities[:0]
	s.index = make(map[Entity]int)
}
