// Package sound builds the game's procedural cues as beep streamers.
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is shared by every cue.
const SampleRate = beep.SampleRate(44100)

// tone is a sine wave with exponential decay.
type tone struct {
	freq  float64
	amp   float64
	decay float64 // per second
	rate  beep.SampleRate
	total int
	pos   int
}

// Tone returns a decaying sine beep of the given frequency and length.
// amp is the starting amplitude in [0, 1].
func Tone(rate beep.SampleRate, freq float64, d time.Duration, amp, decay float64) beep.Streamer {
	return &tone{
		freq:  freq,
		amp:   amp,
		decay: decay,
		rate:  rate,
		total: rate.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		sec := float64(t.pos) / float64(t.rate)
		v := math.Sin(2*math.Pi*t.freq*sec) * t.amp * math.Exp(-t.decay*sec)
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Eat is played when food is eaten.
func Eat() beep.Streamer {
	return Tone(SampleRate, 880, 100*time.Millisecond, 0.12, 3)
}

// Crash is played on game over.
func Crash() beep.Streamer {
	return Tone(SampleRate, 220, 400*time.Millisecond, 0.12, 3)
}

var melody = []float64{261.63, 329.63, 392.00, 523.25}

// Melody is the short arpeggio looped while playing.
func Melody() beep.Streamer {
	notes := make([]beep.Streamer, 0, len(melody))
	for _, f := range melody {
		notes = append(notes, Tone(SampleRate, f, 250*time.Millisecond, 0.06, 2))
	}
	return beep.Seq(notes...)
}

// Quieter lowers s by the given number of halvings.
func Quieter(s beep.Streamer, halvings float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: -halvings}
}

// PCM renders a finite streamer to signed 16-bit little-endian stereo.
func PCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				x := int16(v * math.MaxInt16)
				out = append(out, byte(x), byte(x>>8))
			}
		}
		if !ok {
			return out
		}
	}
}
