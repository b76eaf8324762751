package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the arena uses.
const Default ecs.LayerID = 0

// SocketConfig is an attach point relative to the body's center, expressed
// for an entity facing right. Facing left mirrors X.
type SocketConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name string `yaml:"name"`

	// Combat
	Health        float64 `yaml:"health"`
	MaxHealth     float64 `yaml:"maxHealth"`
	Damage        float64 `yaml:"damage"`
	AttackMinTime float64 `yaml:"attackMinTime"` // seconds
	AttackMaxTime float64 `yaml:"attackMaxTime"` // seconds
	DeathDelay    float64 `yaml:"deathDelay"`    // seconds between DeathEnd and removal

	// Zones
	AgroRadius   float64 `yaml:"agroRadius"`
	CombatRadius float64 `yaml:"combatRadius"`
	WeaponWidth  float64 `yaml:"weaponWidth"`
	WeaponHeight float64 `yaml:"weaponHeight"`

	// Movement
	MoveSpeed        float64 `yaml:"moveSpeed"` // pixels per tick
	AcceptanceRadius float64 `yaml:"acceptanceRadius"`

	// Animation
	Montage    string  `yaml:"montage"`
	AttackRate float64 `yaml:"attackRate"`
	DeathRate  float64 `yaml:"deathRate"`

	// Sockets: "EnemySocket" carries the weapon box, "TipSocket" is where hit effects spawn
	Sockets map[string]SocketConfig `yaml:"sockets"`

	SwingSound SoundID `yaml:"-"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`

	// Visual
	TintColor color.RGBA `yaml:"-"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types       map[string]EnemyTypeConfig
	DefaultType string
}

// PlayerConfig contains the opponent's configuration
type PlayerConfig struct {
	Health          float64
	MoveSpeed       float64
	AttackDamage    float64
	AttackRange     float64
	AttackCooldown  int // frames
	CollisionWidth  float64
	CollisionHeight float64
	HitParticles    EffectID
	HitSound        SoundID
}

// NavigationConfig contains pathfinding configuration
type NavigationConfig struct {
	CellSize       float64
	RepathInterval int // frames between path refreshes while following a moving goal
	WaypointRadius float64
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	HealthBarDuration int // frames the enemy health bar stays up after a hit

	// Flash effects (frames)
	DamageFlashFrames int
}

// UIConfig contains HUD and debug draw configuration
type UIConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64

	AgroZoneColor   color.RGBA
	CombatZoneColor color.RGBA
	WeaponZoneColor color.RGBA
	BodyColor       color.RGBA
	PlayerColor     color.RGBA
	WallColor       color.RGBA

	HUDFontSize float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawZones      bool
	LogTransitions bool
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Enemy EnemyConfig
var Player PlayerConfig
var Navigation NavigationConfig
var Combat CombatConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue      = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightRed  = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	DarkGray  = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

// Socket names used by the melee rig.
const (
	SocketWeapon = "EnemySocket"
	SocketTip    = "TipSocket"
)

// DeltaTime is the simulated seconds per tick.
func DeltaTime() float64 {
	return 1.0 / float64(C.TPS)
}

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
	}

	grunt := EnemyTypeConfig{
		Name:             "Grunt",
		Health:           75,
		MaxHealth:        100,
		Damage:           15,
		AttackMinTime:    0.5,
		AttackMaxTime:    2.0,
		DeathDelay:       3.0,
		AgroRadius:       600,
		CombatRadius:     30,
		WeaponWidth:      24,
		WeaponHeight:     12,
		MoveSpeed:        2.0,
		AcceptanceRadius: 10,
		Montage:          MontageCombat,
		AttackRate:       1.35,
		DeathRate:        1.0,
		Sockets: map[string]SocketConfig{
			SocketWeapon: {X: 22, Y: 0},
			SocketTip:    {X: 34, Y: -2},
		},
		SwingSound:      SoundSwing,
		CollisionWidth:  20,
		CollisionHeight: 20,
		TintColor:       LightRed,
	}

	brute := grunt
	brute.Name = "Brute"
	brute.Health = 140
	brute.MaxHealth = 140
	brute.Damage = 25
	brute.AttackMinTime = 1.0
	brute.AttackMaxTime = 2.5
	brute.MoveSpeed = 1.4
	brute.AttackRate = 1.0
	brute.CombatRadius = 40
	brute.Sockets = map[string]SocketConfig{
		SocketWeapon: {X: 30, Y: 0},
		SocketTip:    {X: 44, Y: -3},
	}
	brute.CollisionWidth = 28
	brute.CollisionHeight = 28
	brute.TintColor = Orange

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"Grunt": grunt,
			"Brute": brute,
		},
		DefaultType: "Grunt",
	}

	Player = PlayerConfig{
		Health:          100,
		MoveSpeed:       3.0,
		AttackDamage:    25,
		AttackRange:     60,
		AttackCooldown:  20,
		CollisionWidth:  18,
		CollisionHeight: 18,
		HitParticles:    EffectBloodBurst,
		HitSound:        SoundHit,
	}

	Navigation = NavigationConfig{
		CellSize:       16,
		RepathInterval: 15,
		WaypointRadius: 4,
	}

	Combat = CombatConfig{
		HealthBarDuration: 180,
		DamageFlashFrames: 5,
	}

	UI = UIConfig{
		HealthBarWidth:  28,
		HealthBarHeight: 4,
		AgroZoneColor:   color.RGBA{R: 255, G: 255, B: 0, A: 40},
		CombatZoneColor: color.RGBA{R: 255, G: 128, B: 0, A: 70},
		WeaponZoneColor: color.RGBA{R: 255, G: 0, B: 255, A: 140},
		BodyColor:       LightRed,
		PlayerColor:     LightBlue,
		WallColor:       DarkGray,
		HUDFontSize:     14,
	}

	Debug = DebugConfig{
		DrawZones:      false,
		LogTransitions: false,
	}
}
