package components

import (
	"github.com/automoto/brawler/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tracks sprite flash effect (damage flash)
type FlashData struct {
	Duration int     // frames remaining
	R, G, B  float32 // color multipliers (1,1,1 = white, 1,0.5,0.5 = red tint)
}

var Flash = donburi.NewComponentType[FlashData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	FramesRemaining int
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// EmitterData is a spawned particle burst.
type EmitterData struct {
	Effect config.EffectID
	X, Y   float64
	Age    int
}

var Emitter = donburi.NewComponentType[EmitterData]()

// FadeData drives an alpha tween, e.g. a corpse fading out during its death delay.
type FadeData struct {
	Tween *gween.Tween
	Alpha float32
}

var Fade = donburi.NewComponentType[FadeData]()
