package systems

import (
	"testing"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// farX keeps a body out of reach of every enemy zone in testArena.
const farX = 1500

type testArena struct {
	ecs *ecs.ECS
	w   donburi.World
}

// newTestArena builds a wall-less world with the simulation systems, the
// world singletons and an empty collision space.
func newTestArena(t *testing.T) *testArena {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	AddSimulationSystems(e)
	factory.CreateTimers(e)
	factory.CreateAudio(e)
	factory.CreateKillTally(e, nil)
	factory.CreateSpace(e, 1600, 800, 32, 32)
	return &testArena{ecs: e, w: e.World}
}

func (a *testArena) spawnPlayer(x, y float64) *donburi.Entry {
	return factory.CreatePlayer(a.ecs, x, y)
}

func (a *testArena) spawnEnemy(t *testing.T, x, y float64) *donburi.Entry {
	t.Helper()
	e, err := factory.CreateEnemy(a.ecs, x, y, "Grunt")
	require.NoError(t, err)
	return e
}

func (a *testArena) tick(n int) {
	for i := 0; i < n; i++ {
		a.ecs.Update()
	}
}

func (a *testArena) timers() *components.TimersData {
	return GetOrCreateTimers(a.w)
}

func (a *testArena) pendingSFX() []cfg.SoundID {
	return GetOrCreateAudio(a.w).PendingSFX
}

// place moves a body's top-left corner and refreshes its cells.
func place(e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e)
	obj.X, obj.Y = x, y
	obj.Update()
}

func status(e *donburi.Entry) cfg.MovementStatus {
	return components.Enemy.Get(e).Status
}
