package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// CombatConfig contains melee swing and damage configuration values
type CombatConfig struct {
	// Aim constants added to the pointer angle for each swing side
	LeftSwing  float64
	RightSwing float64

	// Swing cycle
	SwingStep   float64 // degrees advanced per swing tick
	SwingFrames int     // ticks in one swing cycle

	// Pivot offsets (pixels, rotated by -angle around the wielder's center)
	PivotOffsetY       float64
	HandOffsetY        float64
	DroppedHandOffsetY float64

	// Sprites
	WeaponScale   int
	MaskThreshold uint8 // alpha above this is part of a hitbox

	// Vulnerability windows (frames)
	EnemyWeaponCooldown int // melee hits on the same enemy
	EnemyHurtCooldown   int // bullet hits on the same enemy

	// Bounce/reflection jitter
	BounceJitterXMin float64
	BounceJitterXMax float64
	BounceJitterYMin float64
	BounceJitterYMax float64
	BounceSpeedMin   float64
	BounceSpeedMax   float64

	// Particle bursts
	PlayerHitBurstMin int
	PlayerHitBurstMax int
}

// WorldConfig contains room geometry and the bullet bounds box
type WorldConfig struct {
	TileSize   int
	RoomTilesW int
	RoomTilesH int
	CellSize   int // resolv space cell size

	BulletMinX     float64
	BulletMaxX     float64
	WideBulletMaxX float64
	BulletMinY     float64
	BulletMaxY     float64
}

// BulletsConfig contains resource limits for bullet collections
type BulletsConfig struct {
	MaxPerCollection int // oldest live bullet is killed once exceeded
	MaxLifetime      int // frames before a bullet is force-expired (0 = never)
}

// HoverConfig contains the idle bob and drop hop of unheld weapons
type HoverConfig struct {
	Amplitude       float32 // pixels
	Duration        float32 // seconds per half cycle
	DropHopHeight   float32 // pixels
	DropHopDuration float32 // seconds
}

// PromptConfig contains the interaction prompt drawn over unheld weapons
type PromptConfig struct {
	FontSize    float64
	TextColor   color.RGBA
	PriceColor  color.RGBA
	ShadowColor color.RGBA
	Padding     int
}

// ParticleConfig contains hit-impact particle appearance
type ParticleConfig struct {
	Lifetime      int // frames
	Speed         float64
	Size          float32
	EnemyHitColor color.RGBA
	WallHitColor  color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Hitboxes   bool // draw weapon, bullet and wall bounds
	LogBullets bool // log bullet spawn/kill/prune
}

// Global configuration instances
var C *Config
var Combat CombatConfig
var World WorldConfig
var Bullets BulletsConfig
var Hover HoverConfig
var Prompt PromptConfig
var Particles ParticleConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Gray         = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	ShadowTint   = color.RGBA{R: 0, G: 0, B: 0, A: 90}
)

func init() {
	C = &Config{
		Width:  21 * 64,
		Height: 14 * 64,
		TPS:    60,
	}

	Combat = CombatConfig{
		LeftSwing:  10,
		RightSwing: -190,

		SwingStep:   20,
		SwingFrames: 10,

		PivotOffsetY:       -50,
		HandOffsetY:        -35,
		DroppedHandOffsetY: -25,

		WeaponScale:   3,
		MaskThreshold: 127,

		EnemyWeaponCooldown: 20, // longer than one swing cycle
		EnemyHurtCooldown:   15,

		BounceJitterXMin: -0.20,
		BounceJitterXMax: 0.10,
		BounceJitterYMin: -0.10,
		BounceJitterYMax: 0.10,
		BounceSpeedMin:   1.0,
		BounceSpeedMax:   2.0,

		PlayerHitBurstMin: 2,
		PlayerHitBurstMax: 4,
	}

	World = WorldConfig{
		TileSize:   64,
		RoomTilesW: 21,
		RoomTilesH: 14,
		CellSize:   32,

		BulletMinX:     0,
		BulletMaxX:     1300,
		WideBulletMaxX: 1400,
		BulletMinY:     0,
		BulletMaxY:     1000,
	}

	Bullets = BulletsConfig{
		MaxPerCollection: 512,
		MaxLifetime:      900, // 15s at 60 TPS
	}

	Hover = HoverConfig{
		Amplitude:       6,
		Duration:        0.8,
		DropHopHeight:   24,
		DropHopDuration: 0.35,
	}

	Prompt = PromptConfig{
		FontSize:    14,
		TextColor:   White,
		PriceColor:  BrightYellow,
		ShadowColor: BlackOverlay,
		Padding:     4,
	}

	Particles = ParticleConfig{
		Lifetime:      18,
		Speed:         2.5,
		Size:          3,
		EnemyHitColor: LightRed,
		WallHitColor:  White,
	}

	Debug = DebugConfig{}
}
