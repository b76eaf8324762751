package systems

import (
	"math"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Package-level nav grid cache (created once per collision space).
// Note: This is safe in single-threaded game loop.
var cachedNavGrid *NavGrid
var navGridSpace *resolv.Space

// MoveTo asks agent to walk until it is within acceptance pixels of goal's
// body. A new request replaces the previous one.
func MoveTo(w donburi.World, agent, goal *donburi.Entry, acceptance float64) {
	if !agent.HasComponent(components.NavAgent) || goal == nil || !goal.Valid() {
		return
	}
	nav := components.NavAgent.Get(agent)
	if nav.Moving && nav.Goal == goal.Entity() {
		nav.AcceptanceRadius = acceptance
		return
	}
	nav.Moving = true
	nav.Goal = goal.Entity()
	nav.AcceptanceRadius = acceptance
	nav.Path = nav.Path[:0]
	nav.PathIndex = 0
	nav.RepathFrames = 0
}

// StopMovement cancels the agent's move request.
func StopMovement(agent *donburi.Entry) {
	if !agent.HasComponent(components.NavAgent) {
		return
	}
	nav := components.NavAgent.Get(agent)
	nav.Moving = false
	nav.Goal = donburi.Null
	nav.Path = nav.Path[:0]
	nav.PathIndex = 0
	if agent.HasComponent(components.Physics) {
		physics := components.Physics.Get(agent)
		physics.SpeedX, physics.SpeedY = 0, 0
	}
}

// UpdateNavigation steps every moving agent along its path.
func UpdateNavigation(ecs *ecs.ECS) {
	w := ecs.World
	grid := getOrCreateNavGrid(w)

	components.NavAgent.Each(w, func(e *donburi.Entry) {
		nav := components.NavAgent.Get(e)
		if !nav.Moving {
			return
		}
		if !w.Valid(nav.Goal) {
			StopMovement(e)
			return
		}
		goal := w.Entry(nav.Goal)
		if !goal.HasComponent(components.Object) {
			StopMovement(e)
			return
		}

		obj := components.Object.Get(e)
		goalObj := components.Object.Get(goal)
		if gapBetween(obj.Object, goalObj.Object) <= nav.AcceptanceRadius {
			StopMovement(e)
			return
		}

		nav.RepathFrames--
		if nav.RepathFrames <= 0 || nav.PathIndex >= len(nav.Path) {
			planPath(nav, grid, obj, goalObj)
			nav.RepathFrames = cfg.Navigation.RepathInterval
		}
		followPath(w, e, nav, obj)
	})
}

func planPath(nav *components.NavAgentData, grid *NavGrid, obj, goal *components.ObjectData) {
	nav.Path = nav.Path[:0]
	nav.PathIndex = 0

	gx, gy := goal.CenterX(), goal.CenterY()
	if grid != nil {
		nodes := grid.FindPath(obj.CenterX(), obj.CenterY(), gx, gy)
		// Skip the start cell; the agent is already in it.
		for i := 1; i < len(nodes); i++ {
			x, y := grid.GridToWorld(nodes[i].X, nodes[i].Y)
			nav.Path = append(nav.Path, dmath.NewVec2(x, y))
		}
	}
	// The last leg always heads for the goal itself, which also covers the
	// straight-line case without a grid.
	nav.Path = append(nav.Path, dmath.NewVec2(gx, gy))
}

func followPath(w donburi.World, e *donburi.Entry, nav *components.NavAgentData, obj *components.ObjectData) {
	if nav.PathIndex >= len(nav.Path) {
		return
	}
	target := nav.Path[nav.PathIndex]
	dx := target.X - obj.CenterX()
	dy := target.Y - obj.CenterY()
	dist := math.Hypot(dx, dy)

	last := nav.PathIndex == len(nav.Path)-1
	if !last && dist <= cfg.Navigation.WaypointRadius {
		nav.PathIndex++
		return
	}
	if dist == 0 {
		return
	}

	step := math.Min(nav.Speed, dist)
	mx, my := dx/dist*step, dy/dist*step
	moveBody(e, obj, mx, my)
}

// moveBody moves a body by (dx, dy), stopping each axis at solid geometry.
func moveBody(e *donburi.Entry, obj *components.ObjectData, dx, dy float64) {
	if dx != 0 {
		if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil && blocked(obj.Object, dx, 0, check) {
			dx = 0
		}
		obj.X += dx
	}
	if dy != 0 {
		if check := obj.Check(0, dy, tags.ResolvSolid); check != nil && blocked(obj.Object, 0, dy, check) {
			dy = 0
		}
		obj.Y += dy
	}

	if e.HasComponent(components.Physics) {
		physics := components.Physics.Get(e)
		physics.SpeedX, physics.SpeedY = dx, dy
		if dx > 0 {
			physics.Facing = 1
		} else if dx < 0 {
			physics.Facing = -1
		}
	}
}

// blocked reports whether obj moved by (dx, dy) would overlap any solid in
// the broadphase result.
func blocked(obj *resolv.Object, dx, dy float64, check *resolv.Collision) bool {
	for _, o := range check.Objects {
		if rectsOverlap(obj.X+dx, obj.Y+dy, obj.W, obj.H, o.X, o.Y, o.W, o.H) {
			return true
		}
	}
	return false
}

// gapBetween is the distance between two bodies' rectangles, zero when they
// touch or overlap.
func gapBetween(a, b *resolv.Object) float64 {
	dx := math.Max(0, math.Max(b.X-(a.X+a.W), a.X-(b.X+b.W)))
	dy := math.Max(0, math.Max(b.Y-(a.Y+a.H), a.Y-(b.Y+b.H)))
	return math.Hypot(dx, dy)
}

func getOrCreateNavGrid(w donburi.World) *NavGrid {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry).Space

	levelEntry, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	arena := components.Level.Get(levelEntry).Arena
	if arena == nil {
		return nil
	}

	// Return cached grid if still valid
	if cachedNavGrid != nil && navGridSpace == space {
		return cachedNavGrid
	}

	cachedNavGrid = CreateNavGrid(space, arena.Width, arena.Height, cfg.Navigation.CellSize, navClearance())
	navGridSpace = space
	return cachedNavGrid
}

// navClearance is half the widest enemy body, so any enemy fits a path.
func navClearance() float64 {
	widest := 0.0
	for _, t := range cfg.Enemy.Types {
		widest = math.Max(widest, math.Max(t.CollisionWidth, t.CollisionHeight))
	}
	return widest / 2
}
