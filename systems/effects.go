package systems

import (
	"math"
	"math/rand"
	"time"

	"github.com/automoto/dungeonblades/components"
	cfg "github.com/automoto/dungeonblades/config"
	"github.com/automoto/dungeonblades/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// SetSeed reseeds the source behind spread jitter, bounce jitter and
// particle bursts so a run can be replayed.
func SetSeed(seed int64) {
	rng = rand.New(rand.NewSource(seed))
}

// SpawnParticle queues a hit-impact visual at (x, y).
func SpawnParticle(ecs *ecs.ECS, kind components.ParticleKind, x, y float64) {
	queue := getOrCreateEffectQueue(ecs)
	queue.Pending = append(queue.Pending, components.ParticleEvent{Kind: kind, X: x, Y: y})
}

// UpdateParticles turns queued spawn requests into particles, moves live
// particles and destroys expired ones.
func UpdateParticles(ecs *ecs.ECS) {
	queue := getOrCreateEffectQueue(ecs)
	for _, ev := range queue.Pending {
		spawnParticle(ecs, ev)
	}
	queue.Pending = queue.Pending[:0]

	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		p.X += p.VX
		p.Y += p.VY
		p.VX *= 0.9
		p.VY *= 0.9
	})

	updateAutoDestroy(ecs)
}

func spawnParticle(ecs *ecs.ECS, ev components.ParticleEvent) {
	clr := cfg.Particles.EnemyHitColor
	if ev.Kind == components.ParticleWallHit {
		clr = cfg.Particles.WallHitColor
	}
	angle := rng.Float64() * 2 * math.Pi
	speed := cfg.Particles.Speed * (0.5 + rng.Float64())
	factory.CreateParticle(ecs, ev.X, ev.Y, math.Cos(angle)*speed, math.Sin(angle)*speed, clr)
}

// updateAutoDestroy handles entities that should be destroyed after a duration
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		if ad.FramesRemaining > 0 {
			ad.FramesRemaining--
		}
		if ad.FramesRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}

func getOrCreateEffectQueue(ecs *ecs.ECS) *components.EffectQueueData {
	entry, ok := components.EffectQueue.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.EffectQueue))
	}
	return components.EffectQueue.Get(entry)
}

// PendingParticles returns the spawn requests raised since the last drain.
func PendingParticles(ecs *ecs.ECS) []components.ParticleEvent {
	return getOrCreateEffectQueue(ecs).Pending
}

// PendingSounds returns the sound effects queued since the last drain.
func PendingSounds(ecs *ecs.ECS) []cfg.SoundID {
	return GetOrCreateAudio(ecs).PendingSFX
}
