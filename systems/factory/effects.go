package factory

import (
	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
)

// SpawnEmitter creates a particle burst centered at (x, y). It takes the
// world rather than the ECS because it is called from event subscribers.
func SpawnEmitter(w donburi.World, x, y float64, effect cfg.EffectID) *donburi.Entry {
	def, ok := cfg.Effects[effect]
	if !ok {
		return nil // Unknown effect type
	}

	entry := archetypes.Emitter.SpawnIn(w)
	components.Emitter.SetValue(entry, components.EmitterData{
		Effect: effect,
		X:      x,
		Y:      y,
	})
	components.AutoDestroy.SetValue(entry, components.AutoDestroyData{
		FramesRemaining: def.Frames,
	})
	return entry
}
