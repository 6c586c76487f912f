// Package assets synthesizes the short sound cues used by the ebiten frontend.
package assets

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

var audioContext *audio.Context

// Context returns the shared audio context, creating it on first use.
func Context() *audio.Context {
	if audioContext == nil {
		audioContext = audio.NewContext(SampleRate)
	}
	return audioContext
}

// Tone renders a sine tone with a linear fade-out as 16-bit little-endian
// stereo PCM, the format audio.Context players expect.
func Tone(freq float64, dur time.Duration, volume float64) []byte {
	n := int(dur.Seconds() * SampleRate)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*float64(i)/SampleRate) * volume * env
		s := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}

// LoadTonePlayer builds a player for a synthesized tone.
func LoadTonePlayer(freq float64, dur time.Duration, volume float64) *audio.Player {
	return Context().NewPlayerFromBytes(Tone(freq, dur, volume))
}
