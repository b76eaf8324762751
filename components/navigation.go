package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// NavAgentData is an active or idle "move to actor" request.
type NavAgentData struct {
	Speed float64

	Moving           bool
	Goal             donburi.Entity
	AcceptanceRadius float64

	Path         []math.Vec2
	PathIndex    int
	RepathFrames int
}

var NavAgent = donburi.NewComponentType[NavAgentData]()
