package components

import (
	"github.com/automoto/brawler/config"
	"github.com/automoto/brawler/timer"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string                  // "Grunt", "Brute" etc...
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration

	Status config.MovementStatus

	// Combat scalars, copied from the type so they can be tuned per instance
	MaxHealth     float64
	Damage        float64
	AttackMinTime float64
	AttackMaxTime float64
	DeathDelay    float64

	Attacking             bool
	OverlappingCombatZone bool

	// Weak reference into the world; check world.Valid before use.
	CombatTarget donburi.Entity

	AttackTimer timer.Handle
	DeathTimer  timer.Handle
}

var Enemy = donburi.NewComponentType[EnemyData]()
