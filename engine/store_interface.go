package engine

import (
	"github.com/tabbylab/whisker/core"
)

// AnyStore provides type-erased operations for lifecycle management,
// letting the world clear or inspect every store uniformly without
// knowing the concrete component type.
type AnyStore interface {
	// Remove deletes the component from an entity
	Remove(e core.Entity)

	// Has checks whether the entity has this component
	Has(e core.Entity) bool

	// Count returns the number of entities with this component
	Count() int

	// Clear removes all components from this store
	Clear()
}
