package engine

import (
	"time"

	"github.com/tabbylab/whisker/core"
)

// System is a single stage of the per-tick pipeline
type System interface {
	Update(dt time.Duration)
	Priority() int // Lower values run first
}

// World contains all entities and their components using typed stores.
// It owns data only; behavior lives in the systems. The world is
// single-threaded by contract: exactly one system mutates it at a time,
// in priority order, once per tick.
type World struct {
	nextEntityID core.Entity

	// Typed component stores, public for direct system access
	Components ComponentStore

	allStores []AnyStore
	systems   []System
}

// NewWorld creates an empty world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		systems:      make([]System, 0, 4),
	}
	w.Components, w.allStores = newComponentStore()
	return w
}

// CreateEntity reserves a fresh, never-reused entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// HasAnyComponent reports whether the entity has at least one component
func (w *World) HasAnyComponent(e core.Entity) bool {
	for _, store := range w.allStores {
		if store.Has(e) {
			return true
		}
	}
	return false
}

// Clear removes all entities and components, for resets in tests
func (w *World) Clear() {
	w.nextEntityID = 1
	for _, store := range w.allStores {
		store.Clear()
	}
}

// AddSystem registers a system and keeps the pipeline sorted by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Bubble sort, small N
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Update runs all systems once in priority order with the given delta.
// Later systems observe the mutations of earlier ones within the tick.
func (w *World) Update(dt time.Duration) {
	for _, system := range w.systems {
		system.Update(dt)
	}
}
