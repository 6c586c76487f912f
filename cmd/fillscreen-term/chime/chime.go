// Package chime synthesizes the short tones played for engine cues.
package chime

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Tone is a sine burst with a short attack and a linear release.
type Tone struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	total  int
	pos    int
}

func NewTone(sr beep.SampleRate, freq float64, d time.Duration, volume float64) *Tone {
	return &Tone{sr: sr, freq: freq, volume: volume, total: sr.N(d)}
}

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	attack := t.sr.N(5 * time.Millisecond)
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		s := math.Sin(2 * math.Pi * t.freq * float64(t.pos) / float64(t.sr))
		env := 1 - float64(t.pos)/float64(t.total)
		if t.pos < attack {
			env *= float64(t.pos) / float64(attack)
		}
		s *= env * t.volume
		samples[i][0] = s
		samples[i][1] = s
		t.pos++
	}
	return len(samples), true
}

func (t *Tone) Err() error {
	return nil
}

// Len is the tone length in samples.
func (t *Tone) Len() int { return t.total }
