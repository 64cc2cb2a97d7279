// Package audio plays the game's synthesized music and sound effects
// through the system speaker.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/mysterious-jump/internal/games/jump"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes one looping music track with any number of one-shot effects.
// It is safe for concurrent use.
type Player struct {
	mu          sync.Mutex
	synth       synth
	mixer       *beep.Mixer
	music       *beep.Ctrl
	track       jump.Track
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player. Nothing is heard until Init succeeds.
// A nil logger discards output.
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		synth:  synth{rate: sampleRate},
		mixer:  &beep.Mixer{},
		track:  -1,
		volume: volume,
		logger: logger,
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences everything.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.withSpeaker(func() {
		p.mixer.Clear()
	})
	p.music = nil
	p.track = -1
}

// PlayMusic replaces the current track with t, looping forever.
func (p *Player) PlayMusic(t jump.Track) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music != nil && p.track == t {
		return
	}

	ctrl := &beep.Ctrl{Streamer: beep.Iterate(func() beep.Streamer {
		return p.trackStreamer(t)
	})}

	p.withSpeaker(func() {
		if p.music != nil {
			// A nil streamer drains, so the mixer drops it.
			p.music.Streamer = nil
		}
		p.mixer.Add(volume(ctrl, p.volume*0.5))
	})
	p.music = ctrl
	p.track = t
	p.logger.Debug("music", "track", t)
}

// PlayEffect starts a one-shot effect over the music.
func (p *Player) PlayEffect(e jump.Effect) {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.effectStreamer(e)
	if s == nil {
		return
	}
	p.withSpeaker(func() {
		p.mixer.Add(volume(s, p.volume))
	})
}

// Playing returns the number of streams in the mix.
func (p *Player) Playing() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	p.withSpeaker(func() {
		n = p.mixer.Len()
	})
	return n
}

// withSpeaker runs f while the speaker is not reading the mixer.
func (p *Player) withSpeaker(f func()) {
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	f()
}

func (p *Player) trackStreamer(t jump.Track) beep.Streamer {
	switch t {
	case jump.TrackMenu:
		return p.synth.melody(menuMelody, 400*time.Millisecond)
	case jump.TrackTheme:
		return p.synth.melody(themeMelody, 180*time.Millisecond)
	default:
		return nil
	}
}

func (p *Player) effectStreamer(e jump.Effect) beep.Streamer {
	switch e {
	case jump.EffectJump:
		return p.synth.sweep(300, 700, 150*time.Millisecond)
	case jump.EffectCoin:
		return beep.Seq(
			p.synth.tone(b5, 80*time.Millisecond),
			p.synth.tone(e6, 220*time.Millisecond),
		)
	case jump.EffectBoost:
		return p.synth.sweep(200, 1400, 450*time.Millisecond)
	default:
		return nil
	}
}

var _ jump.Audio = (*Player)(nil)
