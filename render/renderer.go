package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/tabbylab/whisker/component"
	"github.com/tabbylab/whisker/core"
	"github.com/tabbylab/whisker/engine"
)

// Renderer draws the world snapshot onto a tcell screen. Strictly
// read-only over simulation components, except for the cached render
// scale on Transform which exists for its use.
type Renderer struct {
	screen tcell.Screen
	world  *engine.World
	actor  core.Entity
}

// NewRenderer creates a renderer over the given screen and world
func NewRenderer(screen tcell.Screen, world *engine.World, actor core.Entity) *Renderer {
	return &Renderer{screen: screen, world: world, actor: actor}
}

// cellsPerUnit is the horizontal projection factor from world units to
// terminal columns
const cellsPerUnit = 3.0

// rowsPerUnit is the vertical projection factor for height above ground
const rowsPerUnit = 2.0

// Draw renders one frame
func (r *Renderer) Draw() {
	r.screen.Clear()
	width, height := r.screen.Size()
	groundRow := height - 3

	r.drawGround(width, groundRow)

	c := &r.world.Components
	for _, e := range c.Kind.All() {
		kind, _ := c.Kind.Get(e)
		tf, ok := c.Transform.Get(e)
		if !ok {
			continue
		}

		// Depth scales the glyph placement slightly and is cached on the
		// transform so repeated frames skip the projection
		tf.Scale = 1 + tf.Z*0.05
		c.Transform.Set(e, tf)

		col := width/2 + int(tf.X*cellsPerUnit*tf.Scale)
		row := groundRow - int(tf.Y*rowsPerUnit) - int(tf.Z)

		glyph := r.glyphFor(e, kind.Kind)
		r.drawGlyph(col, row, glyph, styleFor(kind.Kind))
	}

	r.drawStatus(width, height)
	r.screen.Show()
}

func (r *Renderer) drawGround(width, groundRow int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, groundRow+1, '─', nil, style)
	}
}

// glyphFor picks the display rune set for an entity
func (r *Renderer) glyphFor(e core.Entity, kind component.Kind) string {
	if kind != component.KindCat {
		switch kind {
		case component.KindCushion:
			return "▆▆"
		case component.KindFoodBowl:
			return "◡"
		case component.KindScratchingPost:
			return "╫"
		case component.KindYarnBall:
			return "●"
		default:
			return "?"
		}
	}

	c := &r.world.Components
	behavior, _ := c.Behavior.Get(e)
	anim, _ := c.Animation.Get(e)

	switch {
	case anim.Startled:
		return "ฅ!ฅ"
	case behavior.State == component.BehaviorSleeping:
		return "zᶻΖ"
	case behavior.State == component.BehaviorPouncePrep:
		return "ᗢ▁"
	case behavior.State == component.BehaviorPouncing:
		return "ᗢ≫"
	case behavior.State == component.BehaviorRecover:
		return "ᗢ~"
	case anim.Smiling:
		return "ᗢᵕ"
	case behavior.State == component.BehaviorAlert:
		return "ᗢ!"
	default:
		return "ᗢ"
	}
}

func (r *Renderer) drawGlyph(col, row int, glyph string, style tcell.Style) {
	x := col - runewidth.StringWidth(glyph)/2
	for _, ch := range glyph {
		r.screen.SetContent(x, row, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

func styleFor(kind component.Kind) tcell.Style {
	switch kind {
	case component.KindCat:
		return tcell.StyleDefault.Foreground(tcell.ColorOrange)
	case component.KindYarnBall:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
}

// drawStatus writes the behavior/animation readout on the bottom line
func (r *Renderer) drawStatus(width, height int) {
	c := &r.world.Components
	behavior, _ := c.Behavior.Get(r.actor)
	anim, _ := c.Animation.Get(r.actor)
	tf, _ := c.Transform.Get(r.actor)

	line := fmt.Sprintf(" %s  x=%.1f y=%.1f z=%.1f", behavior.State, tf.X, tf.Y, tf.Z)
	if anim.Smiling {
		line += "  smiling"
	}
	if anim.EarWiggle == component.EarSideLeft {
		line += "  ear<"
	}
	if anim.EarWiggle == component.EarSideRight {
		line += "  ear>"
	}
	if anim.TailFlicking {
		line += "  tail~"
	}
	if anim.SubtleWiggle {
		line += "  wiggle"
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range line {
		if x >= width {
			break
		}
		r.screen.SetContent(x, height-1, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}
