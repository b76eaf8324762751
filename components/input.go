package components

import (
	cfg "github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the state of a single action for the current frame
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData holds raw action states for this frame and the last (singleton component)
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
