package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Wall   = donburi.NewTag().SetName("Wall")
	VFX    = donburi.NewTag().SetName("VFX")
)

// Resolv tags for collision queries
const (
	ResolvSolid = "solid"
	// ResolvPawn marks bodies that enemy zones can overlap.
	ResolvPawn  = "Pawn"
	ResolvEnemy = "Enemy"
	ResolvZone  = "zone"
)
