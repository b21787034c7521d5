package systems

import (
	"testing"

	"github.com/automoto/dungeonblades/components"
	cfg "github.com/automoto/dungeonblades/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func countParticles(a *arena) int {
	n := 0
	components.Particle.Each(a.ecs.World, func(*donburi.Entry) { n++ })
	return n
}

func TestParticlesDrainAndExpire(t *testing.T) {
	a := newArena(t)
	SpawnParticle(a.ecs, components.ParticleEnemyHit, 10, 10)
	SpawnParticle(a.ecs, components.ParticleWallHit, 20, 20)
	require.Len(t, PendingParticles(a.ecs), 2)
	assert.Zero(t, countParticles(a), "spawning only queues")

	UpdateParticles(a.ecs)
	assert.Empty(t, PendingParticles(a.ecs))
	assert.Equal(t, 2, countParticles(a))

	for i := 0; i < cfg.Particles.Lifetime; i++ {
		UpdateParticles(a.ecs)
	}
	assert.Zero(t, countParticles(a))
}

func TestSoundsAreQueued(t *testing.T) {
	a := newArena(t)
	PlaySFX(a.ecs, cfg.SoundHit)
	PlaySFX(a.ecs, cfg.SoundHit)

	assert.Equal(t, []cfg.SoundID{cfg.SoundHit, cfg.SoundHit}, PendingSounds(a.ecs))
}

func TestClock(t *testing.T) {
	a := newArena(t)
	assert.Equal(t, 0, Now(a.ecs))
	UpdateClock(a.ecs)
	UpdateClock(a.ecs)
	assert.Equal(t, 2, Now(a.ecs))
}

func TestSetSeedReplaysJitter(t *testing.T) {
	t.Cleanup(func() { SetSeed(42) })
	draw := func() []float64 {
		SetSeed(7)
		return []float64{randRange(-1, 1), randRange(-1, 1), randRange(-1, 1)}
	}

	first := draw()
	assert.Equal(t, first, draw())
	for _, v := range first {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.Less(t, v, 1.0)
	}
}
