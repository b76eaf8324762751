package components

import (
	"github.com/automoto/brawler/assets/animations"
	"github.com/yohamta/donburi"
)

type MontageData struct {
	Montage *animations.Montage
}

var Montage = donburi.NewComponentType[MontageData]()
