package archetypes

import (
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Combatant,
		components.Object,
		components.Health,
		components.Physics,
		components.Flash,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Physics,
		components.Zones,
		components.Montage,
		components.NavAgent,
		components.Flash,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Emitter = newArchetype(
		tags.VFX,
		components.Emitter,
		components.AutoDestroy,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Timers = newArchetype(
		components.Timers,
	)
	Audio = newArchetype(
		components.Audio,
	)
	KillTally = newArchetype(
		components.KillTally,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

// SpawnIn creates the archetype directly in a world. Event subscribers only
// see the world, not the ECS wrapper.
func (a *archetype) SpawnIn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
