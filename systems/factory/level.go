package factory

import (
	"fmt"

	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceCellSize is the broadphase cell size of the collision space.
const spaceCellSize = 32

// CreateLevel builds an arena: the level entity, its collision space, walls,
// the player at the first spawn and one enemy per enemy spawn. It returns the
// player entry.
func CreateLevel(ecs *ecs.ECS, arena *level.Arena) (*donburi.Entry, error) {
	if arena == nil {
		return nil, fmt.Errorf("create level: nil arena")
	}
	if len(arena.PlayerSpawns) == 0 {
		return nil, fmt.Errorf("create level %q: no player spawn", arena.Name)
	}

	levelEntry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(levelEntry, components.LevelData{Arena: arena})

	CreateSpace(ecs, arena.Width, arena.Height, spaceCellSize, spaceCellSize)

	for _, wall := range arena.Walls {
		CreateWall(ecs, wall)
	}

	spawn := arena.PlayerSpawns[0]
	player := CreatePlayer(ecs,
		spawn.X-cfg.Player.CollisionWidth/2,
		spawn.Y-cfg.Player.CollisionHeight/2)

	// Spawn points are body centers.
	for _, es := range arena.EnemySpawns {
		t, ok := cfg.Enemy.Types[es.EnemyType]
		if !ok {
			t = cfg.Enemy.Types[cfg.Enemy.DefaultType]
		}
		x, y := es.X-t.CollisionWidth/2, es.Y-t.CollisionHeight/2
		if _, err := CreateEnemy(ecs, x, y, es.EnemyType); err != nil {
			return nil, fmt.Errorf("create level %q: %w", arena.Name, err)
		}
	}

	return player, nil
}
