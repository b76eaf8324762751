package components

import "github.com/yohamta/donburi"

// DeathData marks an enemy whose death montage has finished; it waits for the
// death-delay timer before removal.
type DeathData struct {
	EndedAt float64 // simulated seconds when the death section ended
}

var Death = donburi.NewComponentType[DeathData]()
