package ecs

import "sort"

// QueryBuilder finds entities present in every store passed to With
type QueryBuilder struct {
	stores   []QueryableStore
	executed bool
	results  []Entity
}

// Query starts a component join.
//
//	entities := world.Query().
//	    With(world.Viewsheds).
//	    With(world.Positions).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{stores: make([]QueryableStore, 0, 4)}
}

// With adds a component store to the join. Panics if called after Execute.
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute returns the entities held by all stores, ordered by entity ID.
// Repeated calls return the cached result.
func (qb *QueryBuilder) Execute() []Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]Entity, 0)
		return qb.results
	}

	// Smallest store first keeps the Has() checks down
	sort.Slice(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})

	candidates := qb.stores[0].All()
	for _, store := range qb.stores[1:] {
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })
	qb.results = candidates
	return qb.results
}
