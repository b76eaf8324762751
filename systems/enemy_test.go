package systems

import (
	"testing"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestAgroBeginChasesOpponent(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	enemy := a.spawnEnemy(t, 500, 300)

	require.True(t, Dispatch(a.w, enemy.Entity(), EventAgroBegin, player.Entity()))

	assert.Equal(t, cfg.StatusMoveToTarget, status(enemy))
	nav := components.NavAgent.Get(enemy)
	assert.True(t, nav.Moving)
	assert.Equal(t, player.Entity(), nav.Goal)
	assert.Equal(t, cfg.Enemy.Types["Grunt"].AcceptanceRadius, nav.AcceptanceRadius)
}

func TestAgroBeginIgnoresDownedOpponent(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	enemy := a.spawnEnemy(t, 500, 300)
	components.Health.Get(player).Current = 0

	Dispatch(a.w, enemy.Entity(), EventAgroBegin, player.Entity())

	assert.Equal(t, cfg.StatusIdle, status(enemy))
	assert.False(t, components.NavAgent.Get(enemy).Moving)
}

func TestAgroBeginIgnoresNonCombatant(t *testing.T) {
	a := newTestArena(t)
	enemy := a.spawnEnemy(t, 500, 300)
	other := a.spawnEnemy(t, 300, 300)

	Dispatch(a.w, enemy.Entity(), EventAgroBegin, other.Entity())

	assert.Equal(t, cfg.StatusIdle, status(enemy))
}

func TestAgroEndReturnsToIdle(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	enemy := a.spawnEnemy(t, 500, 300)
	components.Combatant.Get(player).HasCombatTarget = true

	Dispatch(a.w, enemy.Entity(), EventAgroBegin, player.Entity())
	Dispatch(a.w, enemy.Entity(), EventAgroEnd, player.Entity())

	assert.Equal(t, cfg.StatusIdle, status(enemy))
	assert.False(t, components.NavAgent.Get(enemy).Moving)
	assert.False(t, components.Combatant.Get(player).HasCombatTarget)
}

func TestCombatBeginEngagesAndAttacks(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	enemy := a.spawnEnemy(t, 130, 300)

	Dispatch(a.w, enemy.Entity(), EventCombatBegin, player.Entity())

	c := components.Combatant.Get(player)
	assert.Equal(t, enemy.Entity(), c.CombatTarget)
	assert.True(t, c.HasCombatTarget)
	assert.True(t, components.PlayerController.Get(player).EnemyHealthBarVisible)

	data := components.Enemy.Get(enemy)
	assert.Equal(t, player.Entity(), data.CombatTarget)
	assert.True(t, data.OverlappingCombatZone)
	assert.True(t, data.Attacking)
	assert.Equal(t, cfg.StatusAttacking, data.Status)

	m := montageOf(enemy)
	require.NotNil(t, m)
	assert.True(t, m.IsPlaying())
	assert.Equal(t, cfg.SectionAttack, m.CurrentSection())
}

func TestCombatBeginAgainstDownedOpponentDoesNotSwing(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	enemy := a.spawnEnemy(t, 130, 300)
	components.Health.Get(player).Current = 0

	Dispatch(a.w, enemy.Entity(), EventCombatBegin, player.Entity())

	data := components.Enemy.Get(enemy)
	assert.Equal(t, player.Entity(), data.CombatTarget)
	assert.False(t, data.Attacking)
}

func TestAttackDoesNotRestartSwing(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	enemy := a.spawnEnemy(t, 130, 300)
	Dispatch(a.w, enemy.Entity(), EventCombatBegin, player.Entity())

	m := montageOf(enemy)
	for i := 0; i < 8; i++ {
		m.Update()
	}
	frame := m.Frame()
	require.Positive(t, frame)

	Dispatch(a.w, enemy.Entity(), EventAttack, donburi.Null)

	assert.Equal(t, frame, m.Frame())
	assert.True(t, components.Enemy.Get(enemy).Attacking)
}

func TestAttackWithoutTargetOnlyStops(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	enemy := a.spawnEnemy(t, 500, 300)
	Dispatch(a.w, enemy.Entity(), EventAgroBegin, player.Entity())

	Dispatch(a.w, enemy.Entity(), EventAttack, donburi.Null)

	assert.Equal(t, cfg.StatusAttacking, status(enemy))
	assert.False(t, components.Enemy.Get(enemy).Attacking)
	assert.False(t, components.NavAgent.Get(enemy).Moving)
}

func TestCombatEndWhileIdleClearsTarget(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	enemy := a.spawnEnemy(t, 130, 300)
	Dispatch(a.w, enemy.Entity(), EventCombatBegin, player.Entity())
	Dispatch(a.w, enemy.Entity(), EventAttackEnd, donburi.Null)

	data := components.Enemy.Get(enemy)
	require.False(t, data.Attacking)
	require.True(t, a.timers().IsActive(data.AttackTimer))

	Dispatch(a.w, enemy.Entity(), EventCombatEnd, player.Entity())

	assert.Equal(t, donburi.Null, data.CombatTarget)
	assert.False(t, data.OverlappingCombatZone)
	assert.Equal(t, cfg.StatusMoveToTarget, data.Status)
	assert.Zero(t, data.AttackTimer)
	assert.Zero(t, a.timers().Len())
	assert.True(t, components.NavAgent.Get(enemy).Moving)

	assert.Equal(t, donburi.Null, components.Combatant.Get(player).CombatTarget)
	assert.False(t, components.PlayerController.Get(player).EnemyHealthBarVisible)
}

func TestCombatEndMidSwingKeepsTarget(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	enemy := a.spawnEnemy(t, 130, 300)
	Dispatch(a.w, enemy.Entity(), EventCombatBegin, player.Entity())

	Dispatch(a.w, enemy.Entity(), EventCombatEnd, player.Entity())

	data := components.Enemy.Get(enemy)
	assert.Equal(t, player.Entity(), data.CombatTarget)
	assert.True(t, data.Attacking)
	assert.Equal(t, cfg.StatusMoveToTarget, data.Status)

	// The swing finishing outside the combat zone schedules nothing.
	Dispatch(a.w, enemy.Entity(), EventAttackEnd, donburi.Null)
	assert.False(t, data.Attacking)
	assert.Zero(t, data.AttackTimer)
}

func TestAttackCadenceStaysWithinBounds(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	enemy := a.spawnEnemy(t, 130, 300)
	Dispatch(a.w, enemy.Entity(), EventCombatBegin, player.Entity())

	data := components.Enemy.Get(enemy)
	for i := 0; i < 50; i++ {
		Dispatch(a.w, enemy.Entity(), EventAttackEnd, donburi.Null)

		remaining, ok := a.timers().Remaining(data.AttackTimer)
		require.True(t, ok)
		assert.GreaterOrEqual(t, remaining, data.AttackMinTime)
		assert.LessOrEqual(t, remaining, data.AttackMaxTime)
	}
	// Each reschedule replaces the previous timer.
	assert.Equal(t, 1, a.timers().Len())
}

func TestAttackTimerSwingsAgain(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	enemy := a.spawnEnemy(t, 130, 300)
	Dispatch(a.w, enemy.Entity(), EventCombatBegin, player.Entity())

	data := components.Enemy.Get(enemy)
	data.AttackMinTime, data.AttackMaxTime = 0.25, 0.25
	Dispatch(a.w, enemy.Entity(), EventAttackEnd, donburi.Null)
	require.False(t, data.Attacking)

	a.timers().Advance(0.2)
	assert.False(t, data.Attacking)

	a.timers().Advance(0.05)
	assert.True(t, data.Attacking)
	assert.Zero(t, a.timers().Len())
}

func TestWeaponHitDamagesOpponent(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	enemy := a.spawnEnemy(t, 130, 300)

	Dispatch(a.w, enemy.Entity(), EventWeaponBegin, player.Entity())

	assert.Equal(t, cfg.Player.Health-cfg.Enemy.Types["Grunt"].Damage, components.Health.Get(player).Current)
	assert.Contains(t, a.pendingSFX(), cfg.Player.HitSound)

	emitters := 0
	components.Emitter.Each(a.w, func(*donburi.Entry) { emitters++ })
	assert.Equal(t, 1, emitters)
}

func TestCollisionNotifiesToggleWeaponZone(t *testing.T) {
	a := newTestArena(t)
	enemy := a.spawnEnemy(t, 130, 300)
	weapon := components.Zones.Get(enemy).Get(components.ZoneWeapon)
	require.False(t, weapon.Enabled)

	Dispatch(a.w, enemy.Entity(), EventActivateCollision, donburi.Null)
	assert.True(t, weapon.Enabled)
	assert.Contains(t, a.pendingSFX(), cfg.SoundSwing)

	Dispatch(a.w, enemy.Entity(), EventDeactivateCollision, donburi.Null)
	assert.False(t, weapon.Enabled)
}

func TestFifthHitKills(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	enemy := a.spawnEnemy(t, 130, 300)
	hp := func() float64 { return components.Health.Get(enemy).Current }
	require.Equal(t, 75.0, hp())

	for i := 0; i < 4; i++ {
		ApplyDamage(a.w, enemy, 15, player.Entity())
		require.NotEqual(t, cfg.StatusDead, status(enemy), "hit %d", i+1)
	}
	assert.Equal(t, 15.0, hp())
	assert.True(t, enemy.HasComponent(components.HealthBar))

	ApplyDamage(a.w, enemy, 15, player.Entity())
	assert.Equal(t, cfg.StatusDead, status(enemy))
	assert.Equal(t, 0.0, hp())
}

func TestOverkillIsNotClamped(t *testing.T) {
	a := newTestArena(t)
	enemy := a.spawnEnemy(t, 130, 300)

	ApplyDamage(a.w, enemy, 100, donburi.Null)

	assert.Equal(t, cfg.StatusDead, status(enemy))
	assert.Equal(t, -25.0, components.Health.Get(enemy).Current)
}

func TestDeadIsTerminal(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	enemy := a.spawnEnemy(t, 130, 300)
	require.True(t, Die(a.w, enemy.Entity()))

	for _, ev := range []EventKind{
		EventAgroBegin, EventAgroEnd, EventCombatBegin, EventCombatEnd,
		EventWeaponBegin, EventWeaponEnd, EventAttack, EventAttackEnd,
		EventActivateCollision, EventDeactivateCollision, EventDie,
	} {
		assert.False(t, Dispatch(a.w, enemy.Entity(), ev, player.Entity()), ev.String())
		assert.Equal(t, cfg.StatusDead, status(enemy), ev.String())
	}
	assert.Equal(t, cfg.Player.Health, components.Health.Get(player).Current)

	zones := components.Zones.Get(enemy)
	assert.False(t, zones.BodyEnabled)
	for i := range zones.Zones {
		assert.False(t, zones.Zones[i].Enabled, zones.Zones[i].Kind.String())
	}
}

func TestDieCancelsPendingAttack(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	enemy := a.spawnEnemy(t, 130, 300)
	Dispatch(a.w, enemy.Entity(), EventCombatBegin, player.Entity())
	Dispatch(a.w, enemy.Entity(), EventAttackEnd, donburi.Null)

	Die(a.w, enemy.Entity())

	data := components.Enemy.Get(enemy)
	assert.False(t, data.Attacking)
	assert.Zero(t, data.AttackTimer)
	assert.Zero(t, a.timers().Len())
	assert.Equal(t, cfg.SectionDeath, montageOf(enemy).CurrentSection())
	assert.Contains(t, a.pendingSFX(), cfg.SoundDeath)
}

func TestDeathTimerRemovesAfterDelay(t *testing.T) {
	a := newTestArena(t)
	enemy := a.spawnEnemy(t, farX, 300)
	Die(a.w, enemy.Entity())

	require.True(t, Dispatch(a.w, enemy.Entity(), EventDeathEnd, donburi.Null))
	require.True(t, enemy.HasComponent(components.Death))
	require.True(t, montageOf(enemy).IsFrozen())

	// 3 seconds at 60 ticks per second.
	a.tick(179)
	require.True(t, enemy.Valid())
	assert.Less(t, components.Fade.Get(enemy).Alpha, float32(0.05))

	a.tick(1)
	assert.False(t, enemy.Valid())

	entry, ok := components.KillTally.First(a.w)
	require.True(t, ok)
	assert.Equal(t, 1, components.KillTally.Get(entry).Kills["Grunt"])
}

func TestDeathEndFiresOnce(t *testing.T) {
	a := newTestArena(t)
	enemy := a.spawnEnemy(t, farX, 300)
	Die(a.w, enemy.Entity())

	Dispatch(a.w, enemy.Entity(), EventDeathEnd, donburi.Null)
	first := components.Enemy.Get(enemy).DeathTimer
	Dispatch(a.w, enemy.Entity(), EventDeathEnd, donburi.Null)

	assert.Equal(t, first, components.Enemy.Get(enemy).DeathTimer)
	assert.Equal(t, 1, a.timers().Len())
}

func TestDeathMontageLeadsToRemoval(t *testing.T) {
	a := newTestArena(t)
	enemy := a.spawnEnemy(t, farX, 300)
	Die(a.w, enemy.Entity())

	ticks := 0
	for !enemy.HasComponent(components.Death) {
		require.Less(t, ticks, 300, "death section never ended")
		a.tick(1)
		ticks++
	}
	// The tick that ended the section already advanced the clock once.
	a.tick(178)
	assert.True(t, enemy.Valid())
	a.tick(1)
	assert.False(t, enemy.Valid())
}

func TestDispatchIgnoresStaleEntities(t *testing.T) {
	a := newTestArena(t)
	player := a.spawnPlayer(100, 300)
	enemy := a.spawnEnemy(t, 130, 300)
	id := enemy.Entity()
	Disappear(a.w, enemy)

	assert.False(t, Dispatch(a.w, id, EventAgroBegin, player.Entity()))
	assert.False(t, Dispatch(a.w, player.Entity(), EventAgroBegin, player.Entity()))
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "CombatBegin", EventCombatBegin.String())
	assert.Equal(t, "Unknown", EventKind(99).String())
}
