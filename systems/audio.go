package systems

import (
	"sync"

	"github.com/automoto/brawler/assets"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioOutputEnabled bool
	audioInitOnce      sync.Once
)

// EnableAudioOutput creates the audio context and synthesizes every sound.
// Headless runs never call it, so queued sounds are simply dropped.
func EnableAudioOutput() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
		for id := range cfg.Sound.Tones {
			if err := globalAudioLoader.PreloadSFX(id); err != nil {
				logger.Warn("could not synthesize sound", "sound", id, "err", err)
			}
		}
		audioOutputEnabled = true
	})
}

// UpdateAudio drains the pending SFX queue.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if audioOutputEnabled {
		for _, soundID := range audioData.PendingSFX {
			playSFX(soundID, audioData.SFXVolume)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID, sfxVolume float64) {
	if sfxVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		return
	}

	volume := sfxVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(w donburi.World, sound cfg.SoundID) {
	if sound == cfg.SoundNone {
		return
	}
	audioData := GetOrCreateAudio(w)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(w donburi.World, volume float64) {
	GetOrCreateAudio(w).SFXVolume = volume
}

// GetOrCreateAudio returns the singleton Audio component for this world, creating it if needed
func GetOrCreateAudio(w donburi.World) *components.AudioData {
	entry, ok := components.Audio.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  cfg.Audio.DefaultSFXVol,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
