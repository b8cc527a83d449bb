package engine

import (
	"sync"
	"time"

	"github.com/tabbylab/whisker/core"
)

// Loop drives the ordered system pipeline once per frame. It computes
// the elapsed time since the previous tick, clamps it to maxDelta to
// bound catch-up after a stall, and runs the world update with that
// delta. Start and Stop are both idempotent; stopping resets internal
// timing so a later restart never applies a huge stale delta.
type Loop struct {
	world    *World
	clock    Clock
	interval time.Duration
	maxDelta time.Duration

	// postTick runs on the loop goroutine after each world update, so
	// the host can pump input and render without racing the simulation
	postTick func()

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	wg       sync.WaitGroup

	lastTick time.Time
	hasLast  bool
}

// NewLoop creates a loop over the given world and time source
func NewLoop(world *World, clock Clock, interval, maxDelta time.Duration) *Loop {
	return &Loop{
		world:    world,
		clock:    clock,
		interval: interval,
		maxDelta: maxDelta,
	}
}

// SetPostTick installs the host callback invoked after every tick.
// Must be called before Start.
func (l *Loop) SetPostTick(fn func()) {
	l.postTick = fn
}

// Start begins the frame loop. A second Start while running is a no-op.
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running {
		return
	}
	l.running = true
	l.stopChan = make(chan struct{})
	l.hasLast = false

	l.wg.Add(1)
	stop := l.stopChan
	core.Go(func() {
		l.run(stop)
	})
}

// Stop halts the frame loop and resets timing. Stopping an already
// stopped loop is a no-op. Safe to Start again afterwards.
func (l *Loop) Stop() {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return
	}
	l.running = false
	close(l.stopChan)
	l.mu.Unlock()

	l.wg.Wait()

	l.mu.Lock()
	l.hasLast = false
	l.mu.Unlock()
}

// Running reports whether the loop is currently started
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// Tick advances the simulation by the clamped elapsed time since the
// previous tick. The loop goroutine calls this once per frame; tests
// call it directly with a mock clock.
func (l *Loop) Tick() {
	now := l.clock.Now()

	var dt time.Duration
	if l.hasLast {
		dt = now.Sub(l.lastTick)
		if dt < 0 {
			dt = 0
		}
		if dt > l.maxDelta {
			dt = l.maxDelta
		}
	}
	l.lastTick = now
	l.hasLast = true

	l.world.Update(dt)

	if l.postTick != nil {
		l.postTick()
	}
}

func (l *Loop) run(stop <-chan struct{}) {
	defer l.wg.Done()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			l.Tick()
		}
	}
}
