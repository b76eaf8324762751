package factory

import (
	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/components"
	"github.com/automoto/brawler/level"
	"github.com/automoto/brawler/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds a solid rectangle that bodies and nav paths cannot cross.
// Empty rectangles from the map are skipped and yield nil.
func CreateWall(ecs *ecs.ECS, r level.Rect) *donburi.Entry {
	if r.W <= 0 || r.H <= 0 {
		return nil
	}
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs.World, obj)
	return wall
}
