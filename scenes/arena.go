package scenes

import (
	"fmt"
	"image/color"
	"sync"

	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/level"
	"github.com/automoto/brawler/systems"
	"github.com/automoto/brawler/systems/factory"
	"github.com/automoto/brawler/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BuildArena creates a world for the arena with the simulation systems
// registered and every entity spawned. Systems in before run ahead of the
// simulation each update. kills seeds the kill tally and may be nil. It
// returns the ECS and the player entry.
func BuildArena(arena *level.Arena, kills map[string]int, before ...ecs.System) (*ecs.ECS, *donburi.Entry, error) {
	e := ecs.NewECS(donburi.NewWorld())
	for _, s := range before {
		e.AddSystem(s)
	}
	systems.AddSimulationSystems(e)

	factory.CreateTimers(e)
	factory.CreateAudio(e)
	factory.CreateKillTally(e, kills)

	player, err := factory.CreateLevel(e, arena)
	if err != nil {
		return nil, nil, fmt.Errorf("build arena: %w", err)
	}
	return e, player, nil
}

// ArenaScene is the playable arena.
type ArenaScene struct {
	arena *level.Arena
	kills map[string]int

	ecs  *ecs.ECS
	hud  *ui.HUDUI
	once sync.Once
	err  error
}

func NewArenaScene(arena *level.Arena, kills map[string]int) *ArenaScene {
	return &ArenaScene{arena: arena, kills: kills}
}

func (as *ArenaScene) Update() error {
	as.once.Do(as.configure)
	if as.err != nil {
		return as.err
	}

	input := systems.GetOrCreateInput(as.ecs.World)
	if systems.GetAction(input, cfg.ActionToggleDebug).JustPressed {
		cfg.Debug.DrawZones = !cfg.Debug.DrawZones
	}

	as.ecs.Update()
	as.hud.Refresh(as.ecs.World)
	return nil
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil || as.err != nil {
		return
	}
	as.ecs.Draw(screen)
	as.hud.Draw(screen)
}

func (as *ArenaScene) configure() {
	// Input runs before the simulation so the player acts on this frame's keys.
	e, _, err := BuildArena(as.arena, as.kills, systems.UpdateInput)
	if err != nil {
		as.err = err
		return
	}
	systems.AddRenderers(e)

	hud, err := ui.NewHUDUI()
	if err != nil {
		as.err = err
		return
	}

	as.ecs = e
	as.hud = hud
}
