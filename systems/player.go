package systems

import (
	"math"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ecs.World, playerEntry)
	})
}

func updateSinglePlayer(w donburi.World, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	if player.AttackCooldown > 0 {
		player.AttackCooldown--
	}

	// A downed player stays where it fell.
	if !isAlive(playerEntry) {
		player.AttackPressed = false
		return
	}

	moveBody(playerEntry, obj,
		player.Direction.X*cfg.Player.MoveSpeed,
		player.Direction.Y*cfg.Player.MoveSpeed)

	if player.AttackPressed {
		player.AttackPressed = false
		if player.AttackCooldown == 0 {
			punch(w, playerEntry, player)
		}
	}
}

// punch hits the enemy currently engaging the player, or else the nearest
// standing enemy within reach.
func punch(w donburi.World, playerEntry *donburi.Entry, player *components.PlayerData) {
	player.AttackCooldown = cfg.Player.AttackCooldown
	PlaySFX(w, cfg.SoundPlayerPunch)

	target := punchTarget(w, playerEntry)
	if target == nil {
		return
	}

	obj := components.Object.Get(playerEntry)
	targetObj := components.Object.Get(target)
	physics := components.Physics.Get(playerEntry)
	if targetObj.CenterX() < obj.CenterX() {
		physics.Facing = -1
	} else {
		physics.Facing = 1
	}

	QueueDamage(target, cfg.Player.AttackDamage, playerEntry.Entity())
}

func punchTarget(w donburi.World, playerEntry *donburi.Entry) *donburi.Entry {
	obj := components.Object.Get(playerEntry).Object
	reach := cfg.Player.AttackRange

	inReach := func(e *donburi.Entry) bool {
		if !isAlive(e) || !e.HasComponent(components.Object) {
			return false
		}
		return gapBetween(obj, components.Object.Get(e).Object) <= reach
	}

	if playerEntry.HasComponent(components.Combatant) {
		c := components.Combatant.Get(playerEntry)
		if w.Valid(c.CombatTarget) {
			if target := w.Entry(c.CombatTarget); inReach(target) {
				return target
			}
		}
	}

	var nearest *donburi.Entry
	best := math.Inf(1)
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if !inReach(e) {
			return
		}
		if d := gapBetween(obj, components.Object.Get(e).Object); d < best {
			best = d
			nearest = e
		}
	})
	return nearest
}
