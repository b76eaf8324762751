package components

import (
	"github.com/automoto/brawler/timer"
	"github.com/yohamta/donburi"
)

// TimersData wraps the world's timer service (singleton component).
type TimersData struct {
	*timer.Manager
}

var Timers = donburi.NewComponentType[TimersData]()
