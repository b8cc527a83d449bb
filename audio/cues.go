package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Cue identifies a short feedback tone
type Cue int

const (
	CueJump Cue = iota
	CueDoubleJump
	CuePounce
	CuePurr
	CueStartle
)

const sampleRate = beep.SampleRate(44100)

// Player generates short sine tones for behavior feedback. A Player
// whose speaker failed to initialize plays nothing; audio is feedback
// glue, never a failure source.
type Player struct {
	ready bool
}

// NewPlayer initializes the speaker. On error the returned player is
// silent but usable.
func NewPlayer() *Player {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	return &Player{ready: err == nil}
}

// Play emits the tone for a cue, non-blocking
func (p *Player) Play(cue Cue) {
	if p == nil || !p.ready {
		return
	}

	freq, dur := cueTone(cue)
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(dur), sine))
}

func cueTone(cue Cue) (freq float64, dur time.Duration) {
	switch cue {
	case CueJump:
		return 660, 60 * time.Millisecond
	case CueDoubleJump:
		return 880, 60 * time.Millisecond
	case CuePounce:
		return 440, 90 * time.Millisecond
	case CuePurr:
		return 180, 150 * time.Millisecond
	case CueStartle:
		return 1040, 50 * time.Millisecond
	default:
		return 660, 60 * time.Millisecond
	}
}
