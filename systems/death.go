package systems

import (
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths fades out corpses waiting for their death timer. Removal
// itself is driven by the timer, not by the fade finishing.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := float32(cfg.DeltaTime())
	components.Fade.Each(ecs.World, func(e *donburi.Entry) {
		fade := components.Fade.Get(e)
		if fade.Tween == nil {
			return
		}
		fade.Alpha, _ = fade.Tween.Update(dt)
	})
}
