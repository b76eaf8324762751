package simulation

import (
	"context"
	"testing"
	"time"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/level"
	"github.com/automoto/brawler/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func duel() *level.Arena {
	return &level.Arena{
		Name:         "duel",
		Width:        640,
		Height:       320,
		PlayerSpawns: []level.PlayerSpawn{{X: 100, Y: 160}},
		EnemySpawns:  []level.EnemySpawn{{X: 400, Y: 160, EnemyType: "Grunt"}},
	}
}

func TestScenarioTicks(t *testing.T) {
	s := Scenario{{Ticks: 3}, {Ticks: 4}}
	assert.Equal(t, 7, s.Ticks())
	assert.Equal(t, 930+300, DefaultScenario().Ticks())
}

func TestRunnerWalksThroughSteps(t *testing.T) {
	r, err := NewRunner(duel(), Scenario{
		{Name: "right", Ticks: 10, DX: 1},
		{Name: "still", Ticks: 5},
	})
	require.NoError(t, err)
	assert.Equal(t, "right", r.CurrentStep())

	player, ok := tags.Player.First(r.World())
	require.True(t, ok)
	startX := components.Object.Get(player).X

	for i := 0; i < 10; i++ {
		r.Tick()
	}
	assert.Equal(t, "still", r.CurrentStep())
	assert.InDelta(t, startX+10*cfg.Player.MoveSpeed, components.Object.Get(player).X, 1e-9)

	summary := r.Run()
	assert.True(t, r.Done())
	assert.Equal(t, 15, summary.Ticks)
	assert.Empty(t, r.CurrentStep())
}

func TestRunnerPlayerBeatsGrunt(t *testing.T) {
	// The enemy walks into reach, then three punches finish it.
	r, err := NewRunner(duel(), Scenario{
		{Name: "fight", Ticks: 600, AttackEvery: 20},
		{Name: "wait", Ticks: 400},
	})
	require.NoError(t, err)

	var enemy *donburi.Entry
	tags.Enemy.Each(r.World(), func(e *donburi.Entry) { enemy = e })
	require.NotNil(t, enemy)

	sawAttacking := false
	for !r.Done() {
		r.Tick()
		if enemy.Valid() && components.Enemy.Get(enemy).Status == cfg.StatusAttacking {
			sawAttacking = true
		}
	}

	assert.True(t, sawAttacking)
	assert.False(t, enemy.Valid(), "removed after its death delay")
	summary := r.Summary()
	assert.Empty(t, summary.Enemies)
	assert.Equal(t, 1, summary.Kills["Grunt"])
	assert.Less(t, summary.PlayerHealth, cfg.Player.Health)
}

func TestRunRealtimeStopsOnCancel(t *testing.T) {
	r, err := NewRunner(duel(), Scenario{{Ticks: 1_000_000}})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	summary, err := RunRealtime(ctx, r, 1000)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, r.Done())
	assert.Positive(t, summary.Ticks)
}
