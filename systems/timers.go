package systems

import (
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/timer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimers advances the simulation clock by one tick and runs every due
// callback.
func UpdateTimers(ecs *ecs.ECS) {
	GetOrCreateTimers(ecs.World).Advance(cfg.DeltaTime())
}

// GetOrCreateTimers returns the singleton Timers component for this world, creating it if needed
func GetOrCreateTimers(w donburi.World) *components.TimersData {
	entry, ok := components.Timers.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Timers))
		components.Timers.SetValue(entry, components.TimersData{Manager: timer.NewManager()})
	}
	return components.Timers.Get(entry)
}
