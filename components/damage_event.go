package components

import "github.com/yohamta/donburi"

// DamageEventData is damage queued by input-driven attackers and applied by
// the combat system on the next update.
type DamageEventData struct {
	Amount     float64
	Instigator donburi.Entity
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
