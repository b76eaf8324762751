package systems

import (
	"testing"

	"github.com/automoto/brawler/components"
	"github.com/automoto/brawler/level"
	"github.com/automoto/brawler/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestMoveToStopsWithinAcceptance(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	enemy := a.spawnEnemy(t, 400, 300)

	MoveTo(a.w, enemy, player, 10)
	nav := components.NavAgent.Get(enemy)
	require.True(t, nav.Moving)

	for i := 0; i < 400 && nav.Moving; i++ {
		UpdateNavigation(a.ecs)
	}
	require.False(t, nav.Moving, "never arrived")

	gap := gapBetween(components.Object.Get(enemy).Object, components.Object.Get(player).Object)
	assert.LessOrEqual(t, gap, 10.0)
	assert.Greater(t, gap, 5.0)
	assert.Equal(t, -1.0, components.Physics.Get(enemy).Facing)
	assert.Zero(t, components.Physics.Get(enemy).SpeedX)
}

func TestMoveToFollowsMovingGoal(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	enemy := a.spawnEnemy(t, 400, 300)
	MoveTo(a.w, enemy, player, 10)

	UpdateNavigation(a.ecs)
	place(player, 700, 300)
	for i := 0; i < 400 && components.NavAgent.Get(enemy).Moving; i++ {
		UpdateNavigation(a.ecs)
	}

	obj := components.Object.Get(enemy)
	assert.Greater(t, obj.X, 600.0)
	assert.Equal(t, 1.0, components.Physics.Get(enemy).Facing)
}

func TestMoveToIgnoresInvalidGoal(t *testing.T) {
	a := newTestArena(t)
	enemy := a.spawnEnemy(t, 400, 300)
	gone := a.spawnPlayer(100, 300)
	a.w.Remove(gone.Entity())

	MoveTo(a.w, enemy, gone, 10)
	assert.False(t, components.NavAgent.Get(enemy).Moving)
}

func TestNavigationStopsWhenGoalDisappears(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	enemy := a.spawnEnemy(t, 400, 300)
	MoveTo(a.w, enemy, player, 10)

	a.w.Remove(player.Entity())
	UpdateNavigation(a.ecs)

	nav := components.NavAgent.Get(enemy)
	assert.False(t, nav.Moving)
	assert.Equal(t, donburi.Null, nav.Goal)
}

func TestStopMovementClearsRequest(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	enemy := a.spawnEnemy(t, 400, 300)
	MoveTo(a.w, enemy, player, 10)
	UpdateNavigation(a.ecs)
	require.NotZero(t, components.Physics.Get(enemy).SpeedX)

	StopMovement(enemy)

	nav := components.NavAgent.Get(enemy)
	assert.False(t, nav.Moving)
	assert.Empty(t, nav.Path)
	assert.Zero(t, components.Physics.Get(enemy).SpeedX)
}

func TestMoveBodyStopsAtWalls(t *testing.T) {
	a := newTestArena(t)
	factory.CreateWall(a.ecs, level.Rect{X: 200, Y: 250, W: 32, H: 100})
	enemy := a.spawnEnemy(t, 170, 300)
	obj := components.Object.Get(enemy)

	moveBody(enemy, obj, 5, 0)
	assert.Equal(t, 175.0, obj.X)
	obj.Update()

	moveBody(enemy, obj, 8, 3)
	assert.Equal(t, 175.0, obj.X, "x blocked by the wall")
	assert.Equal(t, 303.0, obj.Y, "y slides along it")
}

func TestFindPathRoutesAroundWall(t *testing.T) {
	a := newTestArena(t)
	// A wall splitting the top of a 320x320 area, open below y=256.
	factory.CreateWall(a.ecs, level.Rect{X: 144, Y: 0, W: 32, H: 256})
	spaceEntry, ok := components.Space.First(a.w)
	require.True(t, ok)

	grid := CreateNavGrid(components.Space.Get(spaceEntry).Space, 320, 320, 16, 8)
	require.False(t, grid.Nodes[2][9].Walkable)
	require.True(t, grid.Nodes[16][9].Walkable)

	path := grid.FindPath(40, 40, 280, 40)
	require.NotEmpty(t, path)
	assert.Equal(t, [2]int{2, 2}, [2]int{path[0].X, path[0].Y})
	last := path[len(path)-1]
	assert.Equal(t, [2]int{17, 2}, [2]int{last.X, last.Y})

	wentUnder := false
	for i, n := range path {
		assert.True(t, n.Walkable)
		if n.Y >= 16 {
			wentUnder = true
		}
		if i > 0 {
			prev := path[i-1]
			assert.LessOrEqual(t, abs(n.X-prev.X), 1)
			assert.LessOrEqual(t, abs(n.Y-prev.Y), 1)
		}
	}
	assert.True(t, wentUnder)
}

func TestFindPathSameCell(t *testing.T) {
	a := newTestArena(t)
	spaceEntry, _ := components.Space.First(a.w)
	grid := CreateNavGrid(components.Space.Get(spaceEntry).Space, 320, 320, 16, 8)

	path := grid.FindPath(20, 20, 24, 26)
	require.Len(t, path, 1)
	x, y := grid.GridToWorld(path[0].X, path[0].Y)
	assert.Equal(t, 24.0, x)
	assert.Equal(t, 24.0, y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
