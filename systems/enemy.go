package systems

import (
	"math/rand/v2"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// EventKind is an input to the enemy behavior state machine.
type EventKind int

const (
	EventAgroBegin EventKind = iota
	EventAgroEnd
	EventCombatBegin
	EventCombatEnd
	EventWeaponBegin
	EventWeaponEnd
	EventAttack
	EventAttackEnd
	EventActivateCollision
	EventDeactivateCollision
	EventDie
	EventDeathEnd
	EventDeathTimer
)

var eventNames = map[EventKind]string{
	EventAgroBegin:           "AgroBegin",
	EventAgroEnd:             "AgroEnd",
	EventCombatBegin:         "CombatBegin",
	EventCombatEnd:           "CombatEnd",
	EventWeaponBegin:         "WeaponBegin",
	EventWeaponEnd:           "WeaponEnd",
	EventAttack:              "Attack",
	EventAttackEnd:           "AttackEnd",
	EventActivateCollision:   "ActivateCollision",
	EventDeactivateCollision: "DeactivateCollision",
	EventDie:                 "Die",
	EventDeathEnd:            "DeathEnd",
	EventDeathTimer:          "DeathTimer",
}

func (k EventKind) String() string {
	if n, ok := eventNames[k]; ok {
		return n
	}
	return "Unknown"
}

// behavior is the state an event handler works on. other is nil for events
// without an opponent (timers, notifies) or when the opponent is gone.
type behavior struct {
	w     donburi.World
	entry *donburi.Entry
	enemy *components.EnemyData
	other *donburi.Entry
}

type transitionKey struct {
	status cfg.MovementStatus
	event  EventKind
}

type handler func(b *behavior)

// transitions is the whole enemy state machine. A (status, event) pair that
// is missing is ignored, which is how Dead stays terminal.
var transitions = map[transitionKey]handler{}

func init() {
	alive := map[EventKind]handler{
		EventAgroBegin:           onAgroBegin,
		EventAgroEnd:             onAgroEnd,
		EventCombatBegin:         onCombatBegin,
		EventCombatEnd:           onCombatEnd,
		EventWeaponBegin:         onWeaponBegin,
		EventWeaponEnd:           func(*behavior) {},
		EventAttack:              onAttack,
		EventAttackEnd:           onAttackEnd,
		EventActivateCollision:   onActivateCollision,
		EventDeactivateCollision: onDeactivateCollision,
		EventDie:                 onDie,
	}
	for _, status := range []cfg.MovementStatus{cfg.StatusIdle, cfg.StatusMoveToTarget, cfg.StatusAttacking} {
		for event, h := range alive {
			transitions[transitionKey{status, event}] = h
		}
	}
	transitions[transitionKey{cfg.StatusDead, EventDeathEnd}] = onDeathEnd
	transitions[transitionKey{cfg.StatusDead, EventDeathTimer}] = onDeathTimer
}

// Dispatch feeds one event to an enemy. other may be donburi.Null. It reports
// whether a transition handled the event.
func Dispatch(w donburi.World, enemy donburi.Entity, event EventKind, other donburi.Entity) bool {
	if !w.Valid(enemy) {
		return false
	}
	entry := w.Entry(enemy)
	if !entry.HasComponent(components.Enemy) {
		return false
	}
	data := components.Enemy.Get(entry)

	h, ok := transitions[transitionKey{data.Status, event}]
	if !ok {
		logger.Debug("enemy event ignored",
			"enemy", entry.Entity(), "status", data.Status, "event", event)
		return false
	}

	b := &behavior{w: w, entry: entry, enemy: data}
	if other != donburi.Null && w.Valid(other) {
		b.other = w.Entry(other)
	}
	h(b)
	return true
}

func (b *behavior) setStatus(status cfg.MovementStatus) {
	if b.enemy.Status == status {
		return
	}
	logger.Debug("enemy transition",
		"enemy", b.entry.Entity(), "type", b.enemy.TypeName,
		"from", b.enemy.Status, "to", status)
	b.enemy.Status = status
}

// combatant returns the opponent's contract, or nil when the other entity
// cannot fight.
func (b *behavior) combatant() *components.CombatantData {
	if b.other == nil || !b.other.HasComponent(components.Combatant) {
		return nil
	}
	return components.Combatant.Get(b.other)
}

func (b *behavior) timers() *components.TimersData {
	return GetOrCreateTimers(b.w)
}

func onAgroBegin(b *behavior) {
	if b.combatant() == nil || !isAlive(b.other) {
		return
	}
	moveToTarget(b, b.other)
}

func onAgroEnd(b *behavior) {
	c := b.combatant()
	if c == nil {
		return
	}
	c.HasCombatTarget = false
	b.setStatus(cfg.StatusIdle)
	if b.entry.HasComponent(components.NavAgent) {
		StopMovement(b.entry)
	}
}

func onCombatBegin(b *behavior) {
	c := b.combatant()
	if c == nil {
		return
	}
	c.CombatTarget = b.entry.Entity()
	c.HasCombatTarget = true
	setEnemyHealthBarVisible(b.other, true)

	b.enemy.CombatTarget = b.other.Entity()
	b.enemy.OverlappingCombatZone = true

	if isAlive(b.other) {
		Dispatch(b.w, b.entry.Entity(), EventAttack, donburi.Null)
	}
}

func onCombatEnd(b *behavior) {
	c := b.combatant()
	if c == nil {
		return
	}
	if c.CombatTarget == b.entry.Entity() {
		c.CombatTarget = donburi.Null
	}
	b.enemy.OverlappingCombatZone = false

	if b.enemy.Status != cfg.StatusAttacking {
		moveToTarget(b, b.other)
		b.enemy.CombatTarget = donburi.Null
	}

	setEnemyHealthBarVisible(b.other, false)

	b.setStatus(cfg.StatusMoveToTarget)
	moveToTarget(b, b.other)
	b.timers().Clear(&b.enemy.AttackTimer)
}

func onWeaponBegin(b *behavior) {
	c := b.combatant()
	if c == nil {
		return
	}

	if c.HitParticles != cfg.EffectNone {
		if x, y, ok := socketPosition(b.entry, cfg.SocketTip); ok {
			factory.SpawnEmitter(b.w, x, y, c.HitParticles)
		}
	}
	if c.HitSound != cfg.SoundNone {
		PlaySFX(b.w, c.HitSound)
	}

	ApplyDamage(b.w, b.other, b.enemy.Damage, b.entry.Entity())
}

func onAttack(b *behavior) {
	if b.entry.HasComponent(components.NavAgent) {
		StopMovement(b.entry)
		b.setStatus(cfg.StatusAttacking)
	}

	if !b.w.Valid(b.enemy.CombatTarget) {
		return
	}
	target := b.w.Entry(b.enemy.CombatTarget)
	if b.enemy.Attacking || !isAlive(target) {
		return
	}

	b.enemy.Attacking = true
	if m := montageOf(b.entry); m != nil {
		if m.Play(float32(b.enemy.TypeConfig.AttackRate)) {
			m.JumpToSection(cfg.SectionAttack)
		}
	}
}

func onAttackEnd(b *behavior) {
	b.enemy.Attacking = false
	if !b.enemy.OverlappingCombatZone {
		return
	}

	delay := b.enemy.AttackMinTime
	if spread := b.enemy.AttackMaxTime - b.enemy.AttackMinTime; spread > 0 {
		delay += rand.Float64() * spread
	}

	timers := b.timers()
	timers.Clear(&b.enemy.AttackTimer)
	w, id := b.w, b.entry.Entity()
	b.enemy.AttackTimer = timers.Set(delay, func() {
		Dispatch(w, id, EventAttack, donburi.Null)
	})
}

func onActivateCollision(b *behavior) {
	EnableZone(b.entry, components.ZoneWeapon)
	if b.enemy.TypeConfig != nil {
		PlaySFX(b.w, b.enemy.TypeConfig.SwingSound)
	}
}

func onDeactivateCollision(b *behavior) {
	DisableZone(b.entry, components.ZoneWeapon)
}

func onDie(b *behavior) {
	b.setStatus(cfg.StatusDead)

	if m := montageOf(b.entry); m != nil {
		if m.Play(float32(b.enemy.TypeConfig.DeathRate)) {
			m.JumpToSection(cfg.SectionDeath)
		}
	}

	DisableAllCollision(b.entry)
	b.enemy.Attacking = false

	// A pending attack would be ignored once Dead.
	b.timers().Clear(&b.enemy.AttackTimer)
	if b.entry.HasComponent(components.NavAgent) {
		StopMovement(b.entry)
	}

	PlaySFX(b.w, cfg.SoundDeath)
}

func onDeathEnd(b *behavior) {
	if b.entry.HasComponent(components.Death) {
		return
	}
	if m := montageOf(b.entry); m != nil {
		m.Freeze()
	}

	timers := b.timers()
	delay := b.enemy.DeathDelay
	b.entry.AddComponent(components.Death)
	components.Death.SetValue(b.entry, components.DeathData{EndedAt: timers.Now()})

	if delay > 0 {
		b.entry.AddComponent(components.Fade)
		components.Fade.SetValue(b.entry, components.FadeData{
			Tween: gween.New(1, 0, float32(delay), ease.Linear),
			Alpha: 1,
		})
	}

	// Adding components moved the entry's data.
	b.enemy = components.Enemy.Get(b.entry)
	w, id := b.w, b.entry.Entity()
	b.enemy.DeathTimer = timers.Set(delay, func() {
		Dispatch(w, id, EventDeathTimer, donburi.Null)
	})
}

func onDeathTimer(b *behavior) {
	b.enemy.DeathTimer = 0
	Disappear(b.w, b.entry)
}

// moveToTarget sets MoveToTarget and, if the target is still standing, asks
// the nav agent to walk there.
func moveToTarget(b *behavior, target *donburi.Entry) {
	b.setStatus(cfg.StatusMoveToTarget)
	if target == nil || !isAlive(target) || !b.entry.HasComponent(components.NavAgent) {
		return
	}
	acceptance := 10.0
	if b.enemy.TypeConfig != nil {
		acceptance = b.enemy.TypeConfig.AcceptanceRadius
	}
	MoveTo(b.w, b.entry, target, acceptance)
}

// Die kills an enemy through the state machine.
func Die(w donburi.World, enemy donburi.Entity) bool {
	return Dispatch(w, enemy, EventDie, donburi.Null)
}

// Disappear removes an enemy, its collision objects and any pending timers,
// and counts the kill.
func Disappear(w donburi.World, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	enemy := components.Enemy.Get(entry)
	timers := GetOrCreateTimers(w)
	timers.Clear(&enemy.AttackTimer)
	timers.Clear(&enemy.DeathTimer)

	removeCollisionObjects(w, entry)
	recordKill(w, enemy.TypeName)

	logger.Debug("enemy removed", "enemy", entry.Entity(), "type", enemy.TypeName)
	w.Remove(entry.Entity())
}

func isAlive(e *donburi.Entry) bool {
	if e == nil || !e.Valid() || !e.HasComponent(components.Health) {
		return false
	}
	return components.Health.Get(e).Current > 0
}

func setEnemyHealthBarVisible(e *donburi.Entry, visible bool) {
	if e == nil || !e.HasComponent(components.PlayerController) {
		return
	}
	components.PlayerController.Get(e).EnemyHealthBarVisible = visible
}
