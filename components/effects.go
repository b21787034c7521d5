package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ParticleKind names a hit-impact visual.
type ParticleKind int

const (
	ParticleEnemyHit ParticleKind = iota
	ParticleWallHit
)

// ParticleEvent is a spawn request raised by combat code.
type ParticleEvent struct {
	Kind ParticleKind
	X, Y float64
}

// EffectQueueData holds particle spawn requests until the frame driver
// drains them (singleton component).
type EffectQueueData struct {
	Pending []ParticleEvent
}

var EffectQueue = donburi.NewComponentType[EffectQueueData]()

// ParticleData is a short-lived drifting dot.
type ParticleData struct {
	X, Y   float64
	VX, VY float64
	Size   float32
	Color  color.RGBA
}

var Particle = donburi.NewComponentType[ParticleData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	FramesRemaining int
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
