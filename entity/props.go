package entity

import (
	"github.com/tabbylab/whisker/component"
	"github.com/tabbylab/whisker/core"
	"github.com/tabbylab/whisker/engine"
)

// SpawnProp creates a static furniture entity. Props carry only a kind
// and a transform: no velocity, no behavior, so every simulation system
// skips them and they exist purely for the renderer.
func SpawnProp(w *engine.World, kind component.Kind, x, z float64) core.Entity {
	e := w.CreateEntity()
	c := &w.Components

	c.Kind.Set(e, component.KindComponent{Kind: kind})
	c.Transform.Set(e, component.TransformComponent{X: x, Y: 0, Z: z, Scale: 1})

	return e
}

// SpawnFurniture places the default room set around the origin
func SpawnFurniture(w *engine.World) []core.Entity {
	return []core.Entity{
		SpawnProp(w, component.KindCushion, -6, 1),
		SpawnProp(w, component.KindFoodBowl, 5, 0.5),
		SpawnProp(w, component.KindScratchingPost, 8, 2),
		SpawnProp(w, component.KindYarnBall, -2, -1),
	}
}
