package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/brawler/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const killTallyKey = "kills"

// SavedKillTally represents the kill counts stored on disk
type SavedKillTally struct {
	Kills map[string]int `json:"kills"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the per-user data store. Without it every load and
// save is a no-op.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open data store: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadKillTally loads the saved counts. A missing save yields an empty map.
func LoadKillTally() (map[string]int, error) {
	kills := make(map[string]int)
	if gdataManager == nil {
		return kills, nil
	}

	data, err := gdataManager.LoadItem(killTallyKey)
	if err != nil {
		return kills, fmt.Errorf("load kill tally: %w", err)
	}
	if len(data) == 0 {
		// No saved tally yet
		return kills, nil
	}

	var saved SavedKillTally
	if err := json.Unmarshal(data, &saved); err != nil {
		return kills, fmt.Errorf("parse kill tally: %w", err)
	}
	for k, v := range saved.Kills {
		kills[k] = v
	}
	return kills, nil
}

// SaveKillTally writes the counts to disk
func SaveKillTally(kills map[string]int) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(SavedKillTally{Kills: kills})
	if err != nil {
		return fmt.Errorf("serialize kill tally: %w", err)
	}
	if err := gdataManager.SaveItem(killTallyKey, data); err != nil {
		return fmt.Errorf("save kill tally: %w", err)
	}
	return nil
}

// UpdatePersistence saves the kill tally after it changed. Failures are
// logged and the game carries on.
func UpdatePersistence(ecs *ecs.ECS) {
	entry, ok := components.KillTally.First(ecs.World)
	if !ok {
		return
	}
	tally := components.KillTally.Get(entry)
	if !tally.Dirty {
		return
	}
	tally.Dirty = false
	if err := SaveKillTally(tally.Kills); err != nil {
		logger.Warn("could not save kill tally", "err", err)
	}
}

func recordKill(w donburi.World, typeName string) {
	entry, ok := components.KillTally.First(w)
	if !ok {
		return
	}
	tally := components.KillTally.Get(entry)
	if tally.Kills == nil {
		tally.Kills = make(map[string]int)
	}
	tally.Kills[typeName]++
	tally.Dirty = true
}
