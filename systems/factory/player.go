package factory

import (
	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the locally controlled opponent with (x, y) as the
// top-left corner of its body.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs, components.PlayerController)

	obj := resolv.NewObject(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight))
	obj.AddTags("character", tags.ResolvPawn)
	obj.Data = player
	addToSpace(ecs.World, obj)

	components.Player.SetValue(player, components.PlayerData{})
	components.Physics.SetValue(player, components.PhysicsData{Facing: 1})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Combatant.SetValue(player, components.CombatantData{
		HitParticles: cfg.Player.HitParticles,
		HitSound:     cfg.Player.HitSound,
	})

	// Initialize Flash component (permanently attached to avoid archetype thrashing)
	components.Flash.SetValue(player, components.FlashData{
		Duration: 0,
		R:        1, G: 1, B: 1,
	})

	return player
}
