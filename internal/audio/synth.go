package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// note is one step of a melody. A zero frequency is a rest.
type note struct {
	freq  float64
	beats float64
}

// Note frequencies (Hz).
const (
	rest = 0.0
	c4   = 261.63
	d4   = 293.66
	e4   = 329.63
	g4   = 392.00
	a4   = 440.00
	c5   = 523.25
	d5   = 587.33
	e5   = 659.25
	g5   = 783.99
	b5   = 987.77
	e6   = 1318.51
)

var (
	menuMelody = []note{
		{c4, 1}, {e4, 1}, {g4, 1}, {c5, 1},
		{a4, 1}, {g4, 1}, {e4, 2},
		{d4, 1}, {g4, 1}, {a4, 1}, {g4, 1},
		{e4, 2}, {rest, 2},
	}
	themeMelody = []note{
		{e5, 0.5}, {g5, 0.5}, {e5, 0.5}, {d5, 0.5}, {c5, 1}, {rest, 0.5}, {g4, 0.5},
		{a4, 0.5}, {c5, 0.5}, {d5, 0.5}, {e5, 0.5}, {d5, 1}, {rest, 1},
		{c5, 0.5}, {e5, 0.5}, {g5, 0.5}, {e5, 0.5}, {d5, 0.5}, {c5, 0.5}, {a4, 1},
		{g4, 0.5}, {a4, 0.5}, {c5, 1}, {rest, 1},
	}
)

// synth builds streamers at a fixed sample rate.
type synth struct {
	rate beep.SampleRate
}

// tone is a sine note with a short fade in and out.
func (s synth) tone(freq float64, d time.Duration) beep.Streamer {
	n := s.rate.N(d)
	if freq <= 0 {
		return beep.Silence(n)
	}
	sine, err := generators.SineTone(s.rate, freq)
	if err != nil {
		return beep.Silence(n)
	}
	return &fade{
		Streamer: beep.Take(n, sine),
		total:    n,
		attack:   s.rate.N(5 * time.Millisecond),
		release:  s.rate.N(min(d/3, 60*time.Millisecond)),
	}
}

// melody plays notes back to back, one beat lasting beat.
func (s synth) melody(notes []note, beat time.Duration) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, s.tone(n.freq, time.Duration(n.beats*float64(beat))))
	}
	return beep.Seq(parts...)
}

// sweep glides from one frequency to another, fading out.
func (s synth) sweep(from, to float64, d time.Duration) beep.Streamer {
	return &chirp{rate: s.rate, from: from, to: to, total: s.rate.N(d)}
}

// volume scales a streamer linearly; zero or below is silent.
func volume(st beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: st, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: math.Log2(v)}
}

// fade applies linear attack and release envelopes.
type fade struct {
	beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1.0
		if f.attack > 0 && f.pos < f.attack {
			g = float64(f.pos) / float64(f.attack)
		}
		if left := f.total - f.pos; f.release > 0 && left < f.release {
			g = min(g, float64(left)/float64(f.release))
		}
		samples[i][0] *= g
		samples[i][1] *= g
		f.pos++
	}
	return n, ok
}

// chirp is a sine sweep with an exponential decay.
type chirp struct {
	rate     beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

func (c *chirp) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if c.pos >= c.total {
			return i, i > 0
		}
		t := float64(c.pos) / float64(c.total)
		freq := c.from + (c.to-c.from)*t
		v := math.Sin(2*math.Pi*c.phase) * math.Exp(-3*t)

		samples[i][0] = v
		samples[i][1] = v

		c.phase += freq / float64(c.rate)
		c.phase -= math.Floor(c.phase)
		c.pos++
	}
	return len(samples), true
}

func (c *chirp) Err() error { return nil }
