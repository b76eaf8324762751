package factory

import (
	"fmt"

	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/assets/animations"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the named type with (x, y) as the top-left
// corner of its body. Unknown types fall back to cfg.Enemy.DefaultType.
func CreateEnemy(ecs *ecs.ECS, x, y float64, enemyTypeName string) (*donburi.Entry, error) {
	enemyType, exists := cfg.Enemy.Types[enemyTypeName]
	if !exists {
		enemyTypeName = cfg.Enemy.DefaultType
		enemyType, exists = cfg.Enemy.Types[enemyTypeName]
		if !exists {
			return nil, fmt.Errorf("create enemy: no enemy type %q and no default", enemyTypeName)
		}
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(x, y, enemyType.CollisionWidth, enemyType.CollisionHeight)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	obj.SetShape(resolv.NewRectangle(0, 0, enemyType.CollisionWidth, enemyType.CollisionHeight))
	obj.AddTags("character", tags.ResolvEnemy)
	obj.Data = enemy
	addToSpace(ecs.World, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:      enemyTypeName,
		TypeConfig:    &enemyType,
		Status:        cfg.StatusIdle,
		MaxHealth:     enemyType.MaxHealth,
		Damage:        enemyType.Damage,
		AttackMinTime: enemyType.AttackMinTime,
		AttackMaxTime: enemyType.AttackMaxTime,
		DeathDelay:    enemyType.DeathDelay,
		CombatTarget:  donburi.Null,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.MaxHealth,
	})
	// Start facing left
	components.Physics.SetValue(enemy, components.PhysicsData{Facing: -1})
	components.NavAgent.SetValue(enemy, components.NavAgentData{
		Speed: enemyType.MoveSpeed,
		Goal:  donburi.Null,
	})
	components.Flash.SetValue(enemy, components.FlashData{R: 1, G: 1, B: 1})

	var montage *animations.Montage
	if defs, ok := cfg.Montages[enemyType.Montage]; ok {
		montage = animations.NewMontage(enemyType.Montage, defs)
	}
	components.Montage.SetValue(enemy, components.MontageData{Montage: montage})

	components.Zones.SetValue(enemy, newZones(ecs.World, enemy, &enemyType))

	return enemy, nil
}

// newZones builds the agro, combat and weapon volumes. The weapon box stays
// disabled until the attack montage opens its hit window.
func newZones(w donburi.World, owner *donburi.Entry, t *cfg.EnemyTypeConfig) components.ZonesData {
	zones := components.ZonesData{BodyEnabled: true}

	agro := zones.Get(components.ZoneAgro)
	agro.Kind = components.ZoneAgro
	agro.Enabled = true
	agro.Radius = t.AgroRadius

	combat := zones.Get(components.ZoneCombat)
	combat.Kind = components.ZoneCombat
	combat.Enabled = true
	combat.Radius = t.CombatRadius

	weapon := zones.Get(components.ZoneWeapon)
	weapon.Kind = components.ZoneWeapon
	weapon.Width = t.WeaponWidth
	weapon.Height = t.WeaponHeight
	weapon.Socket = cfg.SocketWeapon

	for i := range zones.Zones {
		z := &zones.Zones[i]
		zw, zh := z.Width, z.Height
		if z.IsCircle() {
			zw, zh = z.Radius*2, z.Radius*2
		}
		// Positioned by the zone system on its first update.
		z.Object = resolv.NewObject(0, 0, zw, zh, tags.ResolvZone)
		z.Object.Data = owner
		z.Overlapping = make(map[donburi.Entity]struct{})
		addToSpace(w, z.Object)
	}

	return zones
}
