package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tabbylab/whisker/audio"
	"github.com/tabbylab/whisker/component"
	"github.com/tabbylab/whisker/config"
	"github.com/tabbylab/whisker/core"
	"github.com/tabbylab/whisker/engine"
	"github.com/tabbylab/whisker/entity"
	"github.com/tabbylab/whisker/input"
	"github.com/tabbylab/whisker/render"
	"github.com/tabbylab/whisker/system"
)

func main() {
	configPath := flag.String("config", "whisker.yaml", "tuning file path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "whisker: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "whisker: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Tuning) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	core.SetCrashHook(screen.Fini)
	screen.HideCursor()

	clock := engine.NewTimeProvider()
	world := engine.NewWorld()
	world.AddSystem(system.NewRunControlSystem(world))
	world.AddSystem(system.NewJumpSystem(world))
	world.AddSystem(system.NewMovementSystem(world))
	world.AddSystem(system.NewBehaviorSystem(world, clock))

	actor := entity.SpawnCat(world, cfg.CatX, 0, cfg.CatZ)
	if cfg.Furniture {
		entity.SpawnFurniture(world)
	}

	var player *audio.Player
	if cfg.Audio {
		player = audio.NewPlayer()
	}

	binder := input.NewBinder(world, actor)
	renderer := render.NewRenderer(screen, world, actor)
	cues := newCueWatcher(world, actor, player)

	// Terminal events arrive on their own goroutine; the loop's
	// post-tick callback drains them so all world writes happen on the
	// simulation goroutine.
	actions := make(chan input.Action, 64)
	quit := make(chan struct{})
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			switch ev := ev.(type) {
			case *tcell.EventKey:
				select {
				case actions <- input.Translate(ev):
				default:
				}
			case *tcell.EventResize:
				screen.Sync()
			case nil:
				return
			}
		}
	})

	var lastDraw time.Time
	loop := engine.NewLoop(world, clock, cfg.FrameInterval(), cfg.MaxDelta())
	loop.SetPostTick(func() {
		for {
			select {
			case a := <-actions:
				if !binder.Apply(a) {
					select {
					case <-quit:
					default:
						close(quit)
					}
					return
				}
			default:
				cues.check()
				if now := clock.Now(); now.Sub(lastDraw) >= cfg.RenderInterval() {
					renderer.Draw()
					lastDraw = now
				}
				return
			}
		}
	})

	loop.Start()
	<-quit
	loop.Stop()
	return nil
}

// cueWatcher derives audio cues from world snapshot changes between
// ticks. It reads only; the simulation owns all writes.
type cueWatcher struct {
	world  *engine.World
	actor  core.Entity
	player *audio.Player

	prevState   component.BehaviorState
	prevVY      float64
	prevDoubled bool
	prevSmiling bool
	prevStartle bool
}

func newCueWatcher(world *engine.World, actor core.Entity, player *audio.Player) *cueWatcher {
	return &cueWatcher{world: world, actor: actor, player: player}
}

func (cw *cueWatcher) check() {
	if cw.player == nil {
		return
	}
	c := &cw.world.Components
	behavior, _ := c.Behavior.Get(cw.actor)
	vel, _ := c.Velocity.Get(cw.actor)
	anim, _ := c.Animation.Get(cw.actor)
	js, _ := c.JumpState.Get(cw.actor)

	switch {
	case js.HasDoubleJumped && !cw.prevDoubled:
		cw.player.Play(audio.CueDoubleJump)
	case vel.VY > cw.prevVY && vel.VY > 1 && cw.prevVY <= 0:
		cw.player.Play(audio.CueJump)
	}

	if behavior.State == component.BehaviorPouncing && cw.prevState != component.BehaviorPouncing {
		cw.player.Play(audio.CuePounce)
	}
	if anim.Smiling && !cw.prevSmiling {
		cw.player.Play(audio.CuePurr)
	}
	if anim.Startled && !cw.prevStartle {
		cw.player.Play(audio.CueStartle)
	}

	cw.prevState = behavior.State
	cw.prevVY = vel.VY
	cw.prevDoubled = js.HasDoubleJumped
	cw.prevSmiling = anim.Smiling
	cw.prevStartle = anim.Startled
}
