package systems

import (
	cfg "github.com/automoto/brawler/config"
	"github.com/yohamta/donburi/ecs"
)

// AddSimulationSystems registers the systems that advance the arena, in
// update order. Input polling is left to the caller so headless runs can
// drive the player directly.
func AddSimulationSystems(e *ecs.ECS) {
	InitWorld(e.World)

	e.AddSystem(UpdatePlayer)
	e.AddSystem(UpdateNavigation)
	e.AddSystem(UpdateObjects)
	e.AddSystem(UpdateZones)
	e.AddSystem(UpdateCombat)
	e.AddSystem(UpdateMontages)
	e.AddSystem(UpdateTimers)
	e.AddSystem(UpdateDeaths)
	e.AddSystem(UpdateEffects)
	e.AddSystem(UpdateAudio)
	e.AddSystem(UpdatePersistence)
}

// AddRenderers registers the arena draw passes.
func AddRenderers(e *ecs.ECS) {
	e.AddRenderer(cfg.Default, DrawArena)
	e.AddRenderer(cfg.Default, DrawHealthBars)
	e.AddRenderer(cfg.Default, DrawZones)
}
