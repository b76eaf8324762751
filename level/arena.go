// Package level loads arena layouts authored in Tiled.
package level

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

//go:embed arenas/*.tmx
var builtin embed.FS

// Rect is an axis-aligned solid rectangle in world pixels.
type Rect struct {
	X, Y, W, H float64
}

type PlayerSpawn struct {
	X, Y  float64
	Index int
}

type EnemySpawn struct {
	X, Y      float64
	EnemyType string
}

// Arena is the parsed content of one TMX file.
type Arena struct {
	Name         string
	Width        int
	Height       int
	Walls        []Rect
	PlayerSpawns []PlayerSpawn
	EnemySpawns  []EnemySpawn
}

// Load parses a TMX file. It takes an fs.FS so callers can pass the embedded
// arenas or os.DirFS for user maps.
func Load(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				arena.Walls = append(arena.Walls, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				arena.PlayerSpawns = append(arena.PlayerSpawns, PlayerSpawn{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case "EnemySpawn":
			for _, o := range og.Objects {
				arena.EnemySpawns = append(arena.EnemySpawns, EnemySpawn{
					X:         o.X,
					Y:         o.Y,
					EnemyType: o.Properties.GetString("enemyType"),
				})
			}
		}
	}

	sort.Slice(arena.PlayerSpawns, func(i, j int) bool {
		return arena.PlayerSpawns[i].Index < arena.PlayerSpawns[j].Index
	})

	if len(arena.PlayerSpawns) == 0 {
		return nil, fmt.Errorf("arena %s: no PlayerSpawn objects", arena.Name)
	}
	return arena, nil
}

// LoadBuiltin loads one of the arenas shipped with the binary by stem name.
func LoadBuiltin(name string) (*Arena, error) {
	return Load(builtin, "arenas/"+name+".tmx")
}

// BuiltinNames lists the embedded arenas, sorted.
func BuiltinNames() ([]string, error) {
	matches, err := fs.Glob(builtin, "arenas/*.tmx")
	if err != nil {
		return nil, fmt.Errorf("glob arenas: %w", err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(m), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}
