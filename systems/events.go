package systems

import (
	"github.com/automoto/brawler/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ZoneOverlapEvent reports that Other started or stopped overlapping one of
// Enemy's zones.
type ZoneOverlapEvent struct {
	Enemy donburi.Entity
	Other donburi.Entity
	Zone  components.ZoneKind
	Begin bool
}

// MontageNotifyEvent is a named notify fired by an entity's montage.
type MontageNotifyEvent struct {
	Entity  donburi.Entity
	Montage string
	Notify  string
}

var (
	ZoneOverlap   = events.NewEventType[ZoneOverlapEvent]()
	MontageNotify = events.NewEventType[MontageNotifyEvent]()
)

// InitWorld subscribes the behavior handlers to a new world's events. Call it
// once per world.
func InitWorld(w donburi.World) {
	ZoneOverlap.Subscribe(w, onZoneOverlap)
	MontageNotify.Subscribe(w, onMontageNotify)
}
