package factory

import (
	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/timer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTimers adds the world's timer service.
func CreateTimers(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Timers.Spawn(ecs)
	components.Timers.SetValue(e, components.TimersData{Manager: timer.NewManager()})
	return e
}

// CreateAudio adds the pending sound effect queue.
func CreateAudio(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Audio.Spawn(ecs)
	components.Audio.SetValue(e, components.AudioData{
		SFXVolume: cfg.Audio.DefaultSFXVol,
	})
	return e
}

// CreateKillTally adds the per-type kill counter, seeded with previously
// saved counts. kills may be nil.
func CreateKillTally(ecs *ecs.ECS, kills map[string]int) *donburi.Entry {
	e := archetypes.KillTally.Spawn(ecs)
	if kills == nil {
		kills = make(map[string]int)
	}
	components.KillTally.SetValue(e, components.KillTallyData{Kills: kills})
	return e
}
