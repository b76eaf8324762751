package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ZoneKind identifies one of an enemy's overlap volumes.
type ZoneKind int

const (
	ZoneAgro ZoneKind = iota
	ZoneCombat
	ZoneWeapon
	zoneCount
)

func (k ZoneKind) String() string {
	switch k {
	case ZoneAgro:
		return "agro"
	case ZoneCombat:
		return "combat"
	case ZoneWeapon:
		return "weapon"
	}
	return "unknown"
}

// Zone is a circle (Radius > 0) or a box (Width x Height) centered on its
// owner plus an optional socket offset.
type Zone struct {
	Kind    ZoneKind
	Enabled bool

	Radius        float64
	Width, Height float64
	Socket        string

	// Broadphase proxy kept in the collision space.
	Object *resolv.Object

	// Entities overlapping as of the last zone update.
	Overlapping map[donburi.Entity]struct{}
}

func (z *Zone) IsCircle() bool {
	return z.Radius > 0
}

func (z *Zone) Contains(e donburi.Entity) bool {
	_, ok := z.Overlapping[e]
	return ok
}

type ZonesData struct {
	Zones [zoneCount]Zone
	// BodyEnabled mirrors the capsule collision of the owning body.
	BodyEnabled bool
}

func (z *ZonesData) Get(kind ZoneKind) *Zone {
	return &z.Zones[kind]
}

var Zones = donburi.NewComponentType[ZonesData]()
