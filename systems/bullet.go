package systems

import (
	"image"
	"log"
	"math"

	"github.com/automoto/dungeonblades/components"
	cfg "github.com/automoto/dungeonblades/config"
	"github.com/automoto/dungeonblades/prefabs"
	"github.com/automoto/dungeonblades/shared/gamemath"
	"github.com/automoto/dungeonblades/systems/factory"
	"github.com/automoto/dungeonblades/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// SpawnBullet creates a bullet of the given kind at (x, y) heading toward
// target and appends it to collection. master is the weapon or enemy that
// fired it.
func SpawnBullet(ecs *ecs.ECS, spec prefabs.BulletSpec, master, room *donburi.Entry, x, y float64, target dmath.Vec2, collection *donburi.Entry) *donburi.Entry {
	dx, dy := gamemath.Normalize(target.X-x, target.Y-y)

	maxX := spec.MaxX
	if maxX <= 0 {
		maxX = cfg.World.BulletMaxX
	}

	bullet := factory.CreateBullet(ecs, components.BulletData{
		Kind:       spec.Kind,
		Spec:       spec,
		Pos:        dmath.Vec2{X: x, Y: y},
		Dir:        dmath.Vec2{X: dx, Y: dy},
		Speed:      spec.Speed,
		Size:       spec.Size,
		Damage:     bulletDamage(ecs, spec, master),
		BounceBack: spec.BounceBack,
		Threat:     components.ParseThreat(spec.Threat),
		Room:       room,
		Master:     master,
		MaxX:       maxX,
	})

	if cfg.Debug.LogBullets {
		log.Printf("bullet %s spawned at (%.0f, %.0f) dir (%.2f, %.2f)", spec.Kind, x, y, dx, dy)
	}

	if collection != nil {
		AddBullet(ecs, collection, bullet)
	}
	return bullet
}

func bulletDamage(ecs *ecs.ECS, spec prefabs.BulletSpec, master *donburi.Entry) int {
	damage := spec.Damage
	if spec.DamageFromMaster && master != nil && master.Valid() {
		switch {
		case master.HasComponent(components.Weapon):
			damage = components.Weapon.Get(master).Spec.Damage
		case master.HasComponent(components.Shooter):
			if d := components.Shooter.Get(master).Damage; d > 0 {
				damage = d
			}
		}
	}
	if spec.ScaleByStrength {
		if player, ok := tags.Player.First(ecs.World); ok {
			damage = int(math.Round(float64(damage) * components.Player.Get(player).Strength))
		}
	}
	return damage
}

// UpdateBullet moves one bullet and resolves its collisions. Bullets outside
// the active room keep their position but still run collision checks.
func UpdateBullet(ecs *ecs.ECS, bullet *donburi.Entry) {
	if bullet == nil || !bullet.Valid() {
		return
	}
	b := components.Bullet.Get(bullet)
	if b.Dead {
		return
	}
	b.Age++

	if b.Spec.WallFirst && bulletWallCollision(ecs, bullet) {
		return
	}

	if b.Room == ActiveRoom(ecs) || b.Spec.MovesOffRoom {
		b.Pos.X += b.Dir.X * b.Speed
		b.Pos.Y += b.Dir.Y * b.Speed
	}
	b.Rotation += b.Spec.Spin
	syncBulletObject(bullet)

	if b.Threat.HitsEnemies() && bulletEnemyCollision(ecs, bullet) {
		return
	}
	if b.Threat.HitsPlayer() && bulletPlayerCollision(ecs, bullet) {
		return
	}
	BounceBullet(ecs, bullet)

	if outOfBounds(b) {
		KillBullet(ecs, bullet)
		return
	}

	if !b.Spec.WallFirst && bulletWallCollision(ecs, bullet) {
		return
	}

	if cfg.Bullets.MaxLifetime > 0 && b.Age >= cfg.Bullets.MaxLifetime {
		expireBullet(bullet)
	}
}

func outOfBounds(b *components.BulletData) bool {
	r := b.Rect()
	x, y := float64(r.Min.X), float64(r.Min.Y)
	return y < cfg.World.BulletMinY || y > cfg.World.BulletMaxY || x < cfg.World.BulletMinX || x > b.MaxX
}

func syncBulletObject(bullet *donburi.Entry) {
	r := components.Bullet.Get(bullet).Rect()
	obj := components.Object.Get(bullet)
	obj.X, obj.Y = float64(r.Min.X), float64(r.Min.Y)
	obj.Update()
}

// bulletWallCollision tests the bottom-middle, bottom-left and bottom-right
// points of the bullet against the walls of its room.
func bulletWallCollision(ecs *ecs.ECS, bullet *donburi.Entry) bool {
	b := components.Bullet.Get(bullet)
	obj := components.Object.Get(bullet)
	if obj.Space == nil {
		return false
	}
	c := obj.Check(0, 0, tags.ResolvSolid)
	if c == nil {
		return false
	}

	r := b.Rect()
	points := [3]image.Point{
		{X: r.Min.X + r.Dx()/2, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Max.Y},
		{X: r.Max.X, Y: r.Max.Y},
	}
	for _, wall := range c.ObjectsByTags(tags.ResolvSolid) {
		wr := image.Rect(int(wall.X), int(wall.Y), int(wall.X+wall.W), int(wall.Y+wall.H))
		for _, p := range points {
			if p.In(wr) {
				SpawnParticle(ecs, components.ParticleWallHit, float64(r.Min.X), float64(r.Min.Y))
				KillBullet(ecs, bullet)
				return true
			}
		}
	}
	return false
}

// bulletPlayerCollision hits the player when the bullet overlaps them. A
// shield charge absorbs the hit instead of health.
func bulletPlayerCollision(ecs *ecs.ECS, bullet *donburi.Entry) bool {
	if worldEntry, ok := components.World.First(ecs.World); ok && components.World.Get(worldEntry).Switching {
		return false
	}
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return false
	}
	b := components.Bullet.Get(bullet)
	r := b.Rect()
	if !r.Overlaps(components.Object.Get(player).Rect()) {
		return false
	}

	p := components.Player.Get(player)
	if p.Shield > 0 {
		p.Shield--
	} else {
		hp := components.Health.Get(player)
		hp.Current = max(hp.Current-b.Damage, 0)
		p.Hurt = true
		p.HurtTick = Now(ecs)
	}

	n := cfg.Combat.PlayerHitBurstMin + rng.Intn(cfg.Combat.PlayerHitBurstMax-cfg.Combat.PlayerHitBurstMin+1)
	for i := 0; i < n; i++ {
		SpawnParticle(ecs, components.ParticleEnemyHit, float64(r.Min.X), float64(r.Min.Y))
	}
	KillBullet(ecs, bullet)
	return true
}

// bulletEnemyCollision damages the first live enemy in the bullet's room
// that overlaps it and is not in its hurt cooldown.
func bulletEnemyCollision(ecs *ecs.ECS, bullet *donburi.Entry) bool {
	b := components.Bullet.Get(bullet)
	obj := components.Object.Get(bullet)
	if obj.Space == nil {
		return false
	}
	c := obj.Check(0, 0, tags.ResolvEnemy)
	if c == nil {
		return false
	}

	r := b.Rect()
	now := Now(ecs)
	for _, o := range c.ObjectsByTags(tags.ResolvEnemy) {
		enemy, ok := o.Data.(*donburi.Entry)
		if !ok || !enemy.Valid() {
			continue
		}
		e := components.Enemy.Get(enemy)
		if e.Dead || !vulnerableToBullet(e, now) {
			continue
		}
		if !r.Overlaps(components.Object.Get(enemy).Rect()) {
			continue
		}

		damageEnemy(ecs, enemy, b.Damage)
		SpawnParticle(ecs, components.ParticleEnemyHit, float64(r.Min.X), float64(r.Min.Y))
		KillBullet(ecs, bullet)
		return true
	}
	return false
}

// BounceBullet reflects a bullet off the player's swinging melee weapon.
// Each bullet can be reflected once; afterwards it only threatens enemies.
func BounceBullet(ecs *ecs.ECS, bullet *donburi.Entry) bool {
	b := components.Bullet.Get(bullet)
	if !b.BounceBack || b.Dead {
		return false
	}
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return false
	}
	p := components.Player.Get(player)
	if !p.Attacking || p.Weapon == nil || !p.Weapon.Valid() {
		return false
	}
	w := components.Weapon.Get(p.Weapon)
	if w.Spec.Behavior != prefabs.BehaviorMelee {
		return false
	}
	if !gamemath.MasksCollide(w.Mask, w.Rect, gamemath.SolidMask(b.Size, b.Size), b.Rect()) {
		return false
	}

	b.Dir.X = -b.Dir.X + randRange(cfg.Combat.BounceJitterXMin, cfg.Combat.BounceJitterXMax)
	b.Dir.Y = -b.Dir.Y + randRange(cfg.Combat.BounceJitterYMin, cfg.Combat.BounceJitterYMax)
	b.Speed *= randRange(cfg.Combat.BounceSpeedMin, cfg.Combat.BounceSpeedMax)
	b.BounceBack = false
	b.Threat = components.ThreatEnemies
	PlaySFX(ecs, cfg.SoundReflect)
	return true
}

// KillBullet marks a bullet dead and takes it out of its room's space. The
// owning collection drops it on its next compaction. Killing a dead or
// removed bullet does nothing.
func KillBullet(ecs *ecs.ECS, bullet *donburi.Entry) {
	if bullet == nil || !bullet.Valid() {
		return
	}
	b := components.Bullet.Get(bullet)
	if b.Dead {
		return
	}
	expireBullet(bullet)
	if !b.Spec.SilentKill {
		PlaySFX(ecs, cfg.SoundImpact)
	}
	if cfg.Debug.LogBullets {
		log.Printf("bullet %s killed at (%.0f, %.0f)", b.Kind, b.Pos.X, b.Pos.Y)
	}
}

// expireBullet removes a bullet without an impact sound.
func expireBullet(bullet *donburi.Entry) {
	b := components.Bullet.Get(bullet)
	b.Dead = true
	if obj := components.Object.Get(bullet); obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
}

func randRange(lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
