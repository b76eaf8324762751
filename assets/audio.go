package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/automoto/brawler/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches the placeholder sound effects.
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte // Cache synthesized PCM for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX synthesizes a sound effect and caches it without creating a
// player.
func (l *AudioLoader) PreloadSFX(id config.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}
	tone, ok := config.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tone for sound %d", id)
	}
	l.sfxCache[id] = SynthesizeTone(tone, l.context.SampleRate(), uint64(id))
	return nil
}

// LoadSFX returns a new player for the sound each time.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[id]))
}

// SynthesizeTone renders a tone as 16-bit signed little-endian stereo PCM,
// the format audio.Context.NewPlayer expects. seed keeps the noise stable
// between runs.
func SynthesizeTone(tone config.ToneConfig, sampleRate int, seed uint64) []byte {
	n := int(tone.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	rng := rand.New(rand.NewPCG(seed, 0x5eed))
	out := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := tone.Frequency + tone.Slide*t
		phase += 2 * math.Pi * freq / float64(sampleRate)

		v := (1-tone.Noise)*math.Sin(phase) + tone.Noise*(rng.Float64()*2-1)
		// Linear decay avoids a click at the end.
		v *= 1 - t

		s := int16(v * 0.8 * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}
