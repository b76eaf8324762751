package config

// Montage and section names
const (
	MontageCombat = "combat"

	SectionAttack = "Attack"
	SectionDeath  = "Death"
)

// Notify names raised by montage playback
const (
	NotifyActivateCollision   = "ActivateCollision"
	NotifyDeactivateCollision = "DeactivateCollision"
	NotifyAttackEnd           = "AttackEnd"
	NotifyDeathEnd            = "DeathEnd"
)

// NotifyDef fires Name when playback reaches Frame.
type NotifyDef struct {
	Frame int
	Name  string
}

// SectionDef is a contiguous frame range of a montage. EndNotify is raised
// when playback runs past Last.
type SectionDef struct {
	First     int
	Last      int
	Speed     float32 // ticks per frame at rate 1
	Notifies  []NotifyDef
	EndNotify string
}

// Montages maps a montage name to its sections.
var Montages = map[string]map[string]SectionDef{
	MontageCombat: {
		SectionAttack: {
			First: 0, Last: 11, Speed: 5,
			Notifies: []NotifyDef{
				{Frame: 4, Name: NotifyActivateCollision},
				{Frame: 8, Name: NotifyDeactivateCollision},
			},
			EndNotify: NotifyAttackEnd,
		},
		SectionDeath: {
			First: 12, Last: 23, Speed: 6,
			EndNotify: NotifyDeathEnd,
		},
	},
}

// EffectID identifies a particle effect template
type EffectID int

const (
	EffectNone EffectID = iota
	EffectBloodBurst
	EffectSparks
)

// EffectDef describes a short-lived visual effect.
type EffectDef struct {
	Frames int     // lifetime in frames
	Radius float64 // starting radius in pixels
	Growth float64 // pixels per frame
	Color  [4]uint8
}

var Effects = map[EffectID]EffectDef{
	EffectBloodBurst: {Frames: 18, Radius: 4, Growth: 0.6, Color: [4]uint8{200, 20, 20, 220}},
	EffectSparks:     {Frames: 10, Radius: 2, Growth: 0.9, Color: [4]uint8{255, 230, 120, 255}},
}
