package systems

import (
	"github.com/automoto/brawler/components"
	"github.com/automoto/brawler/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers moved bodies with the space's cells. A body whose
// collision was switched off loses its pawn and enemy tags, so broadphase
// queries no longer see it while it waits to be removed.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if e.HasComponent(components.Zones) && !components.Zones.Get(e).BodyEnabled {
			obj.RemoveTags(tags.ResolvPawn, tags.ResolvEnemy)
		}
		obj.Update()
	}
}
