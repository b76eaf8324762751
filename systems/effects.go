package systems

import (
	"github.com/automoto/brawler/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (flash, emitters, auto-destroy)
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateEmitters(ecs)
	updateAutoDestroy(ecs)
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

func updateEmitters(ecs *ecs.ECS) {
	components.Emitter.Each(ecs.World, func(e *donburi.Entry) {
		components.Emitter.Get(e).Age++
	})
}

// updateAutoDestroy removes entities whose duration ran out
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		if ad.FramesRemaining > 0 {
			ad.FramesRemaining--
		}
		if ad.FramesRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}
