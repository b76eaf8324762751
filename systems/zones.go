package systems

import (
	"math"

	"github.com/automoto/brawler/components"
	"github.com/automoto/brawler/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Ends are published inner zone first and begins outer zone first, so a
// body crossing several boundaries in one tick sees them in walking order.
var (
	endOrder   = []components.ZoneKind{components.ZoneWeapon, components.ZoneCombat, components.ZoneAgro}
	beginOrder = []components.ZoneKind{components.ZoneAgro, components.ZoneCombat, components.ZoneWeapon}
)

// UpdateZones moves every enemy's zone proxies onto its body, diffs the
// overlapping pawns against the previous tick and delivers the enter/exit
// events before returning.
func UpdateZones(ecs *ecs.ECS) {
	w := ecs.World
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		updateEnemyZones(w, e)
	})
	ZoneOverlap.ProcessEvents(w)
}

func updateEnemyZones(w donburi.World, e *donburi.Entry) {
	zones := components.Zones.Get(e)
	current := [len(zones.Zones)]map[donburi.Entity]struct{}{}

	for i := range zones.Zones {
		z := &zones.Zones[i]
		cx, cy := zoneCenter(e, z)
		syncZoneProxy(z, cx, cy)

		if !z.Enabled {
			continue
		}
		current[i] = overlappingPawns(z, cx, cy)
	}

	for _, kind := range endOrder {
		z := zones.Get(kind)
		for other := range z.Overlapping {
			if _, still := current[kind][other]; still {
				continue
			}
			delete(z.Overlapping, other)
			ZoneOverlap.Publish(w, ZoneOverlapEvent{Enemy: e.Entity(), Other: other, Zone: kind})
		}
	}
	for _, kind := range beginOrder {
		z := zones.Get(kind)
		for other := range current[kind] {
			if z.Contains(other) {
				continue
			}
			z.Overlapping[other] = struct{}{}
			ZoneOverlap.Publish(w, ZoneOverlapEvent{Enemy: e.Entity(), Other: other, Zone: kind, Begin: true})
		}
	}
}

func overlappingPawns(z *components.Zone, cx, cy float64) map[donburi.Entity]struct{} {
	found := make(map[donburi.Entity]struct{})
	check := z.Object.Check(0, 0, tags.ResolvPawn)
	if check == nil {
		return found
	}
	for _, o := range check.Objects {
		other, ok := o.Data.(*donburi.Entry)
		if !ok || !other.Valid() {
			continue
		}
		if zoneOverlaps(z, cx, cy, o) {
			found[other.Entity()] = struct{}{}
		}
	}
	return found
}

// zoneOverlaps is the precise test behind the broadphase: circle or box
// against the body's bounding rectangle.
func zoneOverlaps(z *components.Zone, cx, cy float64, body *resolv.Object) bool {
	if z.IsCircle() {
		nx := math.Max(body.X, math.Min(cx, body.X+body.W))
		ny := math.Max(body.Y, math.Min(cy, body.Y+body.H))
		dx, dy := cx-nx, cy-ny
		return dx*dx+dy*dy <= z.Radius*z.Radius
	}
	return rectsOverlap(cx-z.Width/2, cy-z.Height/2, z.Width, z.Height, body.X, body.Y, body.W, body.H)
}

func zoneCenter(e *donburi.Entry, z *components.Zone) (float64, float64) {
	if z.Socket != "" {
		if x, y, ok := socketPosition(e, z.Socket); ok {
			return x, y
		}
	}
	obj := components.Object.Get(e)
	return obj.CenterX(), obj.CenterY()
}

func syncZoneProxy(z *components.Zone, cx, cy float64) {
	if z.Object == nil {
		return
	}
	z.Object.X = cx - z.Object.W/2
	z.Object.Y = cy - z.Object.H/2
	z.Object.Update()
}

// socketPosition returns the world position of a named socket on the
// entity's body, mirrored by its facing. ok is false when the entity's type
// has no such socket.
func socketPosition(e *donburi.Entry, socket string) (x, y float64, ok bool) {
	if !e.HasComponent(components.Enemy) || !e.HasComponent(components.Object) {
		return 0, 0, false
	}
	t := components.Enemy.Get(e).TypeConfig
	if t == nil {
		return 0, 0, false
	}
	s, ok := t.Sockets[socket]
	if !ok {
		return 0, 0, false
	}

	facing := 1.0
	if e.HasComponent(components.Physics) && components.Physics.Get(e).Facing < 0 {
		facing = -1
	}
	obj := components.Object.Get(e)
	return obj.CenterX() + s.X*facing, obj.CenterY() + s.Y, true
}

// EnableZone starts overlap tracking for one zone. Bodies already inside
// fire a begin event on the next zone update.
func EnableZone(e *donburi.Entry, kind components.ZoneKind) {
	if !e.HasComponent(components.Zones) {
		return
	}
	components.Zones.Get(e).Get(kind).Enabled = true
}

// DisableZone stops overlap tracking for one zone and forgets its overlaps
// without firing exit events.
func DisableZone(e *donburi.Entry, kind components.ZoneKind) {
	if !e.HasComponent(components.Zones) {
		return
	}
	z := components.Zones.Get(e).Get(kind)
	z.Enabled = false
	clear(z.Overlapping)
}

// DisableAllCollision turns off every zone and the body collision.
func DisableAllCollision(e *donburi.Entry) {
	if !e.HasComponent(components.Zones) {
		return
	}
	zones := components.Zones.Get(e)
	for i := range zones.Zones {
		DisableZone(e, zones.Zones[i].Kind)
	}
	zones.BodyEnabled = false
}

// removeCollisionObjects takes the body and zone proxies out of the space.
func removeCollisionObjects(w donburi.World, e *donburi.Entry) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil {
			space.Remove(obj.Object)
		}
	}
	if e.HasComponent(components.Zones) {
		zones := components.Zones.Get(e)
		for i := range zones.Zones {
			if zones.Zones[i].Object != nil {
				space.Remove(zones.Zones[i].Object)
			}
		}
	}
}
