package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction      Vector
	AttackCooldown int // frames until the player can strike again
	AttackPressed  bool
}

var Player = donburi.NewComponentType[PlayerData]()
