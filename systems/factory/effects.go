package factory

import (
	"image/color"

	"github.com/automoto/dungeonblades/archetypes"
	"github.com/automoto/dungeonblades/components"
	cfg "github.com/automoto/dungeonblades/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateParticle spawns a drifting dot that destroys itself after the
// configured lifetime.
func CreateParticle(ecs *ecs.ECS, x, y, vx, vy float64, clr color.RGBA) *donburi.Entry {
	p := archetypes.Particle.Spawn(ecs)
	components.Particle.SetValue(p, components.ParticleData{
		X:     x,
		Y:     y,
		VX:    vx,
		VY:    vy,
		Size:  cfg.Particles.Size,
		Color: clr,
	})
	components.AutoDestroy.SetValue(p, components.AutoDestroyData{
		FramesRemaining: cfg.Particles.Lifetime,
	})
	return p
}
