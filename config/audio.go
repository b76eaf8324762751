package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundSwing
	SoundHit
	SoundDeath
	SoundPlayerPunch
)

// ToneConfig describes a procedurally generated placeholder effect.
type ToneConfig struct {
	Frequency float64 // Hz at the start of the sound
	Slide     float64 // Hz added over the whole duration
	Duration  float64 // seconds
	Noise     float64 // 0..1 mix of white noise
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to their tone definitions
type SoundConfig struct {
	Tones             map[SoundID]ToneConfig
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneConfig{
			SoundSwing:       {Frequency: 520, Slide: -300, Duration: 0.12, Noise: 0.6},
			SoundHit:         {Frequency: 180, Slide: -80, Duration: 0.15, Noise: 0.8},
			SoundDeath:       {Frequency: 300, Slide: -220, Duration: 0.5, Noise: 0.2},
			SoundPlayerPunch: {Frequency: 240, Slide: -120, Duration: 0.08, Noise: 0.7},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHit: 1.5,
		},
	}
}
