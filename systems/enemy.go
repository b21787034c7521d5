package systems

import (
	"github.com/automoto/dungeonblades/components"
	cfg "github.com/automoto/dungeonblades/config"
	"github.com/automoto/dungeonblades/shared/gamemath"
	"github.com/automoto/dungeonblades/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// vulnerableToWeapon reports whether an enemy is outside its post-hit
// window for melee damage.
func vulnerableToWeapon(e *components.EnemyData, now int) bool {
	return now-e.WeaponHurtTick >= cfg.Combat.EnemyWeaponCooldown
}

// vulnerableToBullet reports whether an enemy is outside its post-hit
// window for bullet damage.
func vulnerableToBullet(e *components.EnemyData, now int) bool {
	return now-e.HurtTick >= cfg.Combat.EnemyHurtCooldown
}

// damageEnemy subtracts damage, stamps the hurt timers and marks the enemy
// dead once its health runs out. Dead enemies leave their room's space.
func damageEnemy(ecs *ecs.ECS, enemy *donburi.Entry, damage int) {
	e := components.Enemy.Get(enemy)
	if e.Dead {
		return
	}
	now := Now(ecs)
	hp := components.Health.Get(enemy)

	hp.Current -= damage
	e.Hurt = true
	e.HurtTick = now
	e.WeaponHurtTick = now

	if hp.Current <= 0 {
		hp.Current = 0
		e.Dead = true
		e.DiedTick = now
		if obj := components.Object.Get(enemy); obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
}

// UpdateEnemies clears the hurt flash once it has run its course.
func UpdateEnemies(ecs *ecs.ECS) {
	now := Now(ecs)
	tags.Enemy.Each(ecs.World, func(enemy *donburi.Entry) {
		e := components.Enemy.Get(enemy)
		if e.Hurt && now-e.HurtTick >= cfg.Enemy.HurtFlashTicks {
			e.Hurt = false
		}
	})
}

// UpdateShooters makes live shooting enemies in the active room fire at the
// player on their interval. Bullets go to the shared bullet manager.
func UpdateShooters(ecs *ecs.ECS) {
	room := ActiveRoom(ecs)
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	arsenalEntry, ok := components.Arsenal.First(ecs.World)
	if !ok {
		return
	}
	arsenal := components.Arsenal.Get(arsenalEntry)
	manager, ok := tags.BulletManager.First(ecs.World)
	if !ok {
		return
	}
	tx, ty := gamemath.Center(components.Object.Get(player).Rect())

	components.Shooter.Each(ecs.World, func(enemy *donburi.Entry) {
		e := components.Enemy.Get(enemy)
		if e.Dead || e.Room != room {
			return
		}
		shooter := components.Shooter.Get(enemy)
		shooter.Cooldown--
		if shooter.Cooldown > 0 {
			return
		}
		shooter.Cooldown = shooter.Interval

		spec, err := arsenal.Bullets.Find(shooter.Bullet)
		if err != nil {
			return
		}
		cx, cy := gamemath.Center(components.Object.Get(enemy).Rect())
		x, y := cx-float64(spec.Size)/2, cy-float64(spec.Size)/2

		fan := spec.Fan
		if len(fan) == 0 {
			fan = []float64{0}
		}
		for _, rot := range fan {
			dx, dy := gamemath.RotateOffset(tx-x, ty-y, rot)
			SpawnBullet(ecs, spec, enemy, room, x, y, dmath.Vec2{X: x + dx, Y: y + dy}, manager)
		}
	})
}
