package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/fonts"
	"github.com/automoto/brawler/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var debugTextOp = &text.DrawOptions{}

// DrawZones outlines every enemy's agro, combat and weapon volumes and
// labels the enemy with its status. Toggled with cfg.Debug.DrawZones.
func DrawZones(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawZones {
		return
	}

	var face text.Face
	if f, ok := fonts.Lookup(fonts.Debug); ok {
		face = text.NewGoXFace(f)
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		zones := components.Zones.Get(e)
		for i := range zones.Zones {
			z := &zones.Zones[i]
			if !z.Enabled {
				continue
			}
			cx, cy := zoneCenter(e, z)
			c := zoneColor(z.Kind)
			if z.IsCircle() {
				vector.StrokeCircle(screen, float32(cx), float32(cy), float32(z.Radius), 1, c, true)
				continue
			}
			vector.StrokeRect(screen,
				float32(cx-z.Width/2), float32(cy-z.Height/2),
				float32(z.Width), float32(z.Height), 1, c, false)
		}

		if face == nil {
			return
		}
		enemy := components.Enemy.Get(e)
		hp := components.Health.Get(e)
		o := components.Object.Get(e)
		debugTextOp.GeoM.Reset()
		debugTextOp.GeoM.Translate(o.X, o.Y+o.H+2)
		debugTextOp.ColorScale.Reset()
		text.Draw(screen, fmt.Sprintf("%s %.0f", enemy.Status, hp.Current), face, debugTextOp)
	})
}

func zoneColor(kind components.ZoneKind) color.RGBA {
	switch kind {
	case components.ZoneAgro:
		return cfg.UI.AgroZoneColor
	case components.ZoneCombat:
		return cfg.UI.CombatZoneColor
	}
	return cfg.UI.WeaponZoneColor
}
