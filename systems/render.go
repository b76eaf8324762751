package systems

import (
	"image/color"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var backgroundColor = color.RGBA{18, 18, 24, 255}

// DrawArena renders walls, bodies and particle bursts. The arena fits the
// screen, so world coordinates are screen coordinates.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), cfg.UI.WallColor, false)
	})

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		c := cfg.UI.BodyColor
		if enemy.TypeConfig != nil && enemy.TypeConfig.TintColor.A != 0 {
			c = enemy.TypeConfig.TintColor
		}
		if enemy.Status == cfg.StatusDead {
			c = darken(c)
		}
		drawBody(screen, e, c)

		// The weapon box is visible only while its hit window is open.
		zones := components.Zones.Get(e)
		if weapon := zones.Get(components.ZoneWeapon); weapon.Enabled {
			cx, cy := zoneCenter(e, weapon)
			vector.FillRect(screen,
				float32(cx-weapon.Width/2), float32(cy-weapon.Height/2),
				float32(weapon.Width), float32(weapon.Height),
				cfg.White, false)
		}
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		drawBody(screen, e, cfg.UI.PlayerColor)
	})

	components.Emitter.Each(ecs.World, func(e *donburi.Entry) {
		em := components.Emitter.Get(e)
		def, ok := cfg.Effects[em.Effect]
		if !ok {
			return
		}
		life := 1 - float32(em.Age)/float32(max(def.Frames, 1))
		r := float32(def.Radius + def.Growth*float64(em.Age))
		c := color.RGBA{def.Color[0], def.Color[1], def.Color[2], uint8(float32(def.Color[3]) * max(life, 0))}
		vector.DrawFilledCircle(screen, float32(em.X), float32(em.Y), r, c, true)
	})
}

// drawBody fills the body rectangle, applying damage flash and death fade,
// and marks the facing side.
func drawBody(screen *ebiten.Image, e *donburi.Entry, c color.RGBA) {
	o := components.Object.Get(e)

	if e.HasComponent(components.Flash) {
		if flash := components.Flash.Get(e); flash.Duration > 0 {
			c = color.RGBA{
				R: uint8(255 * flash.R),
				G: uint8(255 * flash.G),
				B: uint8(255 * flash.B),
				A: c.A,
			}
		}
	}
	if e.HasComponent(components.Fade) {
		alpha := components.Fade.Get(e).Alpha
		c = color.RGBA{
			R: uint8(float32(c.R) * alpha),
			G: uint8(float32(c.G) * alpha),
			B: uint8(float32(c.B) * alpha),
			A: uint8(float32(c.A) * alpha),
		}
	}

	vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), c, false)

	facing := 1.0
	if e.HasComponent(components.Physics) && components.Physics.Get(e).Facing < 0 {
		facing = -1
	}
	eyeX := o.CenterX() + facing*o.W/4
	vector.FillRect(screen, float32(eyeX-1.5), float32(o.Y+o.H/4), 3, 3, backgroundColor, false)
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{c.R / 2, c.G / 2, c.B / 2, c.A}
}

// DrawHealthBars draws a bar above every recently hit enemy.
func DrawHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Health) {
			return
		}
		o := components.Object.Get(e)
		hp := components.Health.Get(e)

		barWidth := cfg.UI.HealthBarWidth
		barHeight := cfg.UI.HealthBarHeight
		// Position the bar above the entity's collision box
		barX := o.X + (o.W-barWidth)/2
		barY := o.Y - barHeight - 4 // 4 pixels of padding

		healthPercentage := max(hp.Current, 0) / hp.Max

		vector.FillRect(screen, float32(barX), float32(barY), float32(barWidth), float32(barHeight), cfg.Red, false)
		vector.FillRect(screen, float32(barX), float32(barY), float32(barWidth*healthPercentage), float32(barHeight), cfg.Green, false)
	})
}
