package engine

import (
	"testing"
	"time"
)

// deltaSpy captures the delta of each pipeline run
type deltaSpy struct {
	deltas []time.Duration
}

func (s *deltaSpy) Update(dt time.Duration) { s.deltas = append(s.deltas, dt) }
func (s *deltaSpy) Priority() int           { return 1 }

func newTestLoop() (*Loop, *deltaSpy, *MockTimeProvider) {
	w := NewWorld()
	spy := &deltaSpy{}
	w.AddSystem(spy)
	clock := NewMockTimeProvider(time.Unix(1000, 0))
	loop := NewLoop(w, clock, 16*time.Millisecond, 32*time.Millisecond)
	return loop, spy, clock
}

func TestFirstTickHasZeroDelta(t *testing.T) {
	loop, spy, _ := newTestLoop()

	loop.Tick()
	if len(spy.deltas) != 1 || spy.deltas[0] != 0 {
		t.Fatalf("first tick must apply zero delta, got %v", spy.deltas)
	}
}

func TestTickComputesElapsed(t *testing.T) {
	loop, spy, clock := newTestLoop()

	loop.Tick()
	clock.Advance(16 * time.Millisecond)
	loop.Tick()

	if spy.deltas[1] != 16*time.Millisecond {
		t.Errorf("expected 16ms delta, got %v", spy.deltas[1])
	}
}

func TestTickClampsLargeDelta(t *testing.T) {
	loop, spy, clock := newTestLoop()

	loop.Tick()
	clock.Advance(5 * time.Second) // stall: tab backgrounded
	loop.Tick()

	if spy.deltas[1] != 32*time.Millisecond {
		t.Errorf("expected clamp to 32ms, got %v", spy.deltas[1])
	}
}

func TestStopResetsTiming(t *testing.T) {
	loop, spy, clock := newTestLoop()

	loop.Tick()
	clock.Advance(16 * time.Millisecond)
	loop.Tick()

	// Simulate a stop/restart with a long pause in between; the first
	// tick after restart must not see the stale gap
	loop.Stop()
	clock.Advance(10 * time.Minute)
	loop.Start()
	loop.Stop() // halt the goroutine; drive ticks manually

	loop.Tick()
	last := spy.deltas[len(spy.deltas)-1]
	if last != 0 {
		t.Errorf("tick after restart applied stale delta %v", last)
	}
}

func TestStartIsIdempotent(t *testing.T) {
	w := NewWorld()
	loop := NewLoop(w, NewTimeProvider(), time.Millisecond, 32*time.Millisecond)

	loop.Start()
	loop.Start() // second start while running is a no-op
	if !loop.Running() {
		t.Error("loop should be running")
	}

	loop.Stop()
	loop.Stop() // second stop is a no-op
	if loop.Running() {
		t.Error("loop should be stopped")
	}

	// Restart works after a stop
	loop.Start()
	if !loop.Running() {
		t.Error("loop should be running after restart")
	}
	loop.Stop()
}
