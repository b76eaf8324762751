package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// CenterX returns the horizontal center of the body.
func (o *ObjectData) CenterX() float64 {
	return o.X + o.W/2
}

// CenterY returns the vertical center of the body.
func (o *ObjectData) CenterY() float64 {
	return o.Y + o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData wraps the singleton collision space.
type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
