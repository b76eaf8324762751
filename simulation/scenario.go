// Package simulation drives an arena without a window: a scripted player
// walks through a scenario while the enemy systems react.
package simulation

import (
	"fmt"

	"github.com/automoto/brawler/components"
	"github.com/automoto/brawler/level"
	"github.com/automoto/brawler/scenes"
	"github.com/automoto/brawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Step holds the player's input for a number of ticks. When AttackEvery is
// positive the player punches on every AttackEvery-th tick of the step.
type Step struct {
	Name        string
	Ticks       int
	DX, DY      float64
	AttackEvery int
}

// Scenario is an ordered script of steps.
type Scenario []Step

// DefaultScenario approaches the enemies, trades blows, then backs away.
func DefaultScenario() Scenario {
	return Scenario{
		{Name: "approach", Ticks: 90, DX: 1},
		{Name: "fight", Ticks: 600, AttackEvery: 20},
		{Name: "retreat", Ticks: 240, DX: -1},
		{Name: "wait", Ticks: 300},
	}
}

// Ticks is the scenario's total length.
func (s Scenario) Ticks() int {
	n := 0
	for _, step := range s {
		n += step.Ticks
	}
	return n
}

// Summary is the state of the arena when a run ends.
type Summary struct {
	Ticks        int
	PlayerHealth float64
	Enemies      map[string]string // type name plus entity id -> status
	Kills        map[string]int
}

// Runner steps one arena through a scenario.
type Runner struct {
	ecs      *ecs.ECS
	player   *donburi.Entry
	scenario Scenario

	step     int
	stepTick int
	ticks    int
}

// NewRunner builds the arena and positions the script at its first step.
func NewRunner(arena *level.Arena, scenario Scenario) (*Runner, error) {
	e, player, err := scenes.BuildArena(arena, nil)
	if err != nil {
		return nil, fmt.Errorf("new runner: %w", err)
	}
	return &Runner{ecs: e, player: player, scenario: scenario}, nil
}

// World exposes the arena's world for inspection.
func (r *Runner) World() donburi.World {
	return r.ecs.World
}

// Done reports whether every step has run.
func (r *Runner) Done() bool {
	return r.step >= len(r.scenario)
}

// Tick applies the current step's input and advances the arena once.
func (r *Runner) Tick() {
	if r.Done() {
		return
	}
	step := r.scenario[r.step]

	if r.player.Valid() {
		player := components.Player.Get(r.player)
		player.Direction = components.Vector{X: step.DX, Y: step.DY}
		if step.AttackEvery > 0 && r.stepTick%step.AttackEvery == 0 {
			player.AttackPressed = true
		}
	}

	r.ecs.Update()
	r.ticks++

	r.stepTick++
	if r.stepTick >= step.Ticks {
		r.step++
		r.stepTick = 0
	}
}

// Run ticks until the scenario ends.
func (r *Runner) Run() Summary {
	for !r.Done() {
		r.Tick()
	}
	return r.Summary()
}

// CurrentStep names the step the next Tick will run.
func (r *Runner) CurrentStep() string {
	if r.Done() {
		return ""
	}
	return r.scenario[r.step].Name
}

func (r *Runner) Summary() Summary {
	w := r.ecs.World
	s := Summary{
		Ticks:   r.ticks,
		Enemies: make(map[string]string),
		Kills:   make(map[string]int),
	}
	if r.player.Valid() {
		s.PlayerHealth = components.Health.Get(r.player).Current
	}
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		s.Enemies[fmt.Sprintf("%s#%d", enemy.TypeName, e.Entity().Id())] = enemy.Status.String()
	})
	if entry, ok := components.KillTally.First(w); ok {
		for k, v := range components.KillTally.Get(entry).Kills {
			s.Kills[k] = v
		}
	}
	return s
}
