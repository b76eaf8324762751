package factory

import (
	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(width, height, cellWidth, cellHeight),
	})
	return space
}

// addToSpace registers obj with the world's collision space, if there is one.
func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
