package systems

import (
	"github.com/automoto/brawler/assets/animations"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var notifyEvents = map[string]EventKind{
	cfg.NotifyActivateCollision:   EventActivateCollision,
	cfg.NotifyDeactivateCollision: EventDeactivateCollision,
	cfg.NotifyAttackEnd:           EventAttackEnd,
	cfg.NotifyDeathEnd:            EventDeathEnd,
}

// UpdateMontages advances every playing montage one tick and delivers the
// notifies it crossed.
func UpdateMontages(ecs *ecs.ECS) {
	w := ecs.World
	components.Montage.Each(w, func(e *donburi.Entry) {
		m := components.Montage.Get(e).Montage
		if m == nil {
			return
		}
		for _, name := range m.Update() {
			MontageNotify.Publish(w, MontageNotifyEvent{
				Entity:  e.Entity(),
				Montage: m.Name,
				Notify:  name,
			})
		}
	})
	MontageNotify.ProcessEvents(w)
}

func onMontageNotify(w donburi.World, ev MontageNotifyEvent) {
	kind, ok := notifyEvents[ev.Notify]
	if !ok {
		return
	}
	Dispatch(w, ev.Entity, kind, donburi.Null)
}

func onZoneOverlap(w donburi.World, ev ZoneOverlapEvent) {
	var kind EventKind
	switch {
	case ev.Zone == components.ZoneAgro && ev.Begin:
		kind = EventAgroBegin
	case ev.Zone == components.ZoneAgro:
		kind = EventAgroEnd
	case ev.Zone == components.ZoneCombat && ev.Begin:
		kind = EventCombatBegin
	case ev.Zone == components.ZoneCombat:
		kind = EventCombatEnd
	case ev.Zone == components.ZoneWeapon && ev.Begin:
		kind = EventWeaponBegin
	default:
		kind = EventWeaponEnd
	}
	Dispatch(w, ev.Enemy, kind, ev.Other)
}

func montageOf(e *donburi.Entry) *animations.Montage {
	if !e.HasComponent(components.Montage) {
		return nil
	}
	return components.Montage.Get(e).Montage
}
