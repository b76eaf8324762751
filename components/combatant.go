package components

import (
	"github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
)

// CombatantData is what an enemy may read and write on its opponent.
type CombatantData struct {
	// CombatTarget is the enemy currently engaging this combatant.
	CombatTarget    donburi.Entity
	HasCombatTarget bool

	// Optional; zero values mean the opponent has no hit effect or sound.
	HitParticles config.EffectID
	HitSound     config.SoundID
}

var Combatant = donburi.NewComponentType[CombatantData]()

// PlayerControllerData backs the HUD. Only locally controlled combatants
// carry it.
type PlayerControllerData struct {
	EnemyHealthBarVisible bool
}

var PlayerController = donburi.NewComponentType[PlayerControllerData]()
