package components

import "github.com/yohamta/donburi"

// KillTallyData counts removed enemies per type (singleton component).
type KillTallyData struct {
	Kills map[string]int
	Dirty bool
}

var KillTally = donburi.NewComponentType[KillTallyData]()
