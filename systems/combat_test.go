package systems

import (
	"testing"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestQueuedDamageAddsUp(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	enemy := a.spawnEnemy(t, farX, 300)

	QueueDamage(player, 10, enemy.Entity())
	QueueDamage(player, 5, enemy.Entity())
	require.True(t, player.HasComponent(components.DamageEvent))
	assert.Equal(t, 15.0, components.DamageEvent.Get(player).Amount)

	UpdateCombat(a.ecs)

	assert.False(t, player.HasComponent(components.DamageEvent))
	assert.Equal(t, cfg.Player.Health-15, components.Health.Get(player).Current)
	assert.Equal(t, cfg.Combat.DamageFlashFrames, components.Flash.Get(player).Duration)
}

func TestHealthBarExpires(t *testing.T) {
	a := newTestArena(t)
	enemy := a.spawnEnemy(t, farX, 300)

	ApplyDamage(a.w, enemy, 10, donburi.Null)
	require.True(t, enemy.HasComponent(components.HealthBar))

	for i := 0; i < cfg.Combat.HealthBarDuration-1; i++ {
		UpdateCombat(a.ecs)
	}
	assert.True(t, enemy.HasComponent(components.HealthBar))

	// Another hit keeps the bar up for a full duration.
	ApplyDamage(a.w, enemy, 10, donburi.Null)
	assert.Equal(t, cfg.Combat.HealthBarDuration, components.HealthBar.Get(enemy).TimeToLive)

	for i := 0; i < cfg.Combat.HealthBarDuration; i++ {
		UpdateCombat(a.ecs)
	}
	assert.False(t, enemy.HasComponent(components.HealthBar))
}

func TestLethalHitShowsNoHealthBar(t *testing.T) {
	a := newTestArena(t)
	enemy := a.spawnEnemy(t, farX, 300)

	ApplyDamage(a.w, enemy, 500, donburi.Null)

	assert.Equal(t, cfg.StatusDead, status(enemy))
	assert.False(t, enemy.HasComponent(components.HealthBar))
}

func TestDamageWhileDeadStillSubtracts(t *testing.T) {
	a := newTestArena(t)
	enemy := a.spawnEnemy(t, farX, 300)
	Die(a.w, enemy.Entity())

	ApplyDamage(a.w, enemy, 10, donburi.Null)

	assert.Equal(t, 65.0, components.Health.Get(enemy).Current)
	assert.Equal(t, cfg.StatusDead, status(enemy))
}

func TestPunchHitsEnemyInReach(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	near := a.spawnEnemy(t, 140, 300)
	far := a.spawnEnemy(t, 400, 300)

	components.Player.Get(player).AttackPressed = true
	UpdatePlayer(a.ecs)
	UpdateCombat(a.ecs)

	assert.Equal(t, 75-cfg.Player.AttackDamage, components.Health.Get(near).Current)
	assert.Equal(t, 75.0, components.Health.Get(far).Current)
	assert.Equal(t, cfg.Player.AttackCooldown, components.Player.Get(player).AttackCooldown)
	assert.Contains(t, a.pendingSFX(), cfg.SoundPlayerPunch)
}

func TestPunchRespectsCooldown(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	enemy := a.spawnEnemy(t, 140, 300)
	data := components.Player.Get(player)

	data.AttackPressed = true
	UpdatePlayer(a.ecs)
	UpdateCombat(a.ecs)
	data.AttackPressed = true
	UpdatePlayer(a.ecs)
	UpdateCombat(a.ecs)

	assert.Equal(t, 75-cfg.Player.AttackDamage, components.Health.Get(enemy).Current)
	assert.False(t, data.AttackPressed)
}

func TestPunchPrefersEngagedEnemy(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	nearest := a.spawnEnemy(t, 125, 300)
	engaged := a.spawnEnemy(t, 60, 300)
	components.Combatant.Get(player).CombatTarget = engaged.Entity()

	components.Player.Get(player).AttackPressed = true
	UpdatePlayer(a.ecs)
	UpdateCombat(a.ecs)

	assert.Equal(t, 75.0, components.Health.Get(nearest).Current)
	assert.Equal(t, 75-cfg.Player.AttackDamage, components.Health.Get(engaged).Current)
	assert.Equal(t, -1.0, components.Physics.Get(player).Facing)
}

func TestDownedPlayerCannotMove(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	components.Health.Get(player).Current = 0
	data := components.Player.Get(player)
	data.Direction = components.Vector{X: 1}
	data.AttackPressed = true

	UpdatePlayer(a.ecs)

	assert.Equal(t, 100.0, components.Object.Get(player).X)
	assert.False(t, data.AttackPressed)
}

func TestEmittersExpire(t *testing.T) {
	a := newTestArena(t)
	e := factory.SpawnEmitter(a.w, 10, 10, cfg.EffectSparks)
	require.NotNil(t, e)
	assert.Nil(t, factory.SpawnEmitter(a.w, 10, 10, cfg.EffectNone))

	frames := cfg.Effects[cfg.EffectSparks].Frames
	for i := 0; i < frames-1; i++ {
		UpdateEffects(a.ecs)
	}
	require.True(t, e.Valid())
	assert.Equal(t, frames-1, components.Emitter.Get(e).Age)

	UpdateEffects(a.ecs)
	assert.False(t, e.Valid())
}
