package systems

import (
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat handles queued damage events and counts down the enemy
// health bars.
func UpdateCombat(ecs *ecs.ECS) {
	w := ecs.World

	// Collect first; applying damage can kill, which changes archetypes.
	type pendingDamage struct {
		entry *donburi.Entry
		dmg   components.DamageEventData
	}
	var queued []pendingDamage
	for e := range components.DamageEvent.Iter(w) {
		queued = append(queued, pendingDamage{e, *components.DamageEvent.Get(e)})
	}
	for _, q := range queued {
		// Remove the damage event component so it is processed only once.
		donburi.Remove[components.DamageEventData](q.entry, components.DamageEvent)
		ApplyDamage(w, q.entry, q.dmg.Amount, q.dmg.Instigator)
	}

	var expired []*donburi.Entry
	for e := range components.HealthBar.Iter(w) {
		healthBar := components.HealthBar.Get(e)
		healthBar.TimeToLive--
		if healthBar.TimeToLive <= 0 {
			expired = append(expired, e)
		}
	}
	for _, e := range expired {
		donburi.Remove[components.HealthBarData](e, components.HealthBar)
	}
}

// QueueDamage records damage to be applied on the next combat update.
// Damage queued twice in one tick adds up.
func QueueDamage(target *donburi.Entry, amount float64, instigator donburi.Entity) {
	if target == nil || !target.Valid() {
		return
	}
	if target.HasComponent(components.DamageEvent) {
		components.DamageEvent.Get(target).Amount += amount
		return
	}
	donburi.Add(target, components.DamageEvent, &components.DamageEventData{
		Amount:     amount,
		Instigator: instigator,
	})
}

// ApplyDamage deals damage immediately. Enemies die as soon as the hit would
// bring them to zero; the subtraction still happens afterwards and health is
// not clamped.
func ApplyDamage(w donburi.World, target *donburi.Entry, amount float64, instigator donburi.Entity) {
	if target == nil || !target.Valid() || !target.HasComponent(components.Health) {
		return
	}
	if target.HasComponent(tags.Enemy) {
		if components.Health.Get(target).Current-amount <= 0 {
			Die(w, target.Entity())
		}
		if !target.Valid() {
			return
		}
		if components.Enemy.Get(target).Status != cfg.StatusDead {
			showHealthBar(target)
		}
	}
	// Fetched after any component change above moved the entry.
	hp := components.Health.Get(target)
	hp.Current -= amount

	if target.HasComponent(components.Flash) {
		flash := components.Flash.Get(target)
		flash.Duration = cfg.Combat.DamageFlashFrames
		flash.R, flash.G, flash.B = 1, 0.5, 0.5
	}

	logger.Debug("damage", "target", target.Entity(), "amount", amount,
		"health", hp.Current, "instigator", instigator)
}

// showHealthBar puts the bar up, or keeps it up for another full duration.
func showHealthBar(e *donburi.Entry) {
	if e.HasComponent(components.HealthBar) {
		components.HealthBar.Get(e).TimeToLive = cfg.Combat.HealthBarDuration
		return
	}
	donburi.Add(e, components.HealthBar, &components.HealthBarData{
		TimeToLive: cfg.Combat.HealthBarDuration,
	})
}
