package components

import (
	"github.com/automoto/brawler/level"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Arena *level.Arena
}

var Level = donburi.NewComponentType[LevelData]()
