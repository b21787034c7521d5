package factory

import (
	"github.com/automoto/dungeonblades/archetypes"
	"github.com/automoto/dungeonblades/assets"
	"github.com/automoto/dungeonblades/components"
	cfg "github.com/automoto/dungeonblades/config"
	"github.com/automoto/dungeonblades/shared/gamemath"
	"github.com/automoto/dungeonblades/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy in room. Enemies with a bullet kind get a
// Shooter component.
func CreateEnemy(ecs *ecs.ECS, room *donburi.Entry, spawn assets.EnemySpawn) *donburi.Entry {
	var extra []donburi.IComponentType
	if spawn.Bullet != "" {
		extra = append(extra, components.Shooter)
	}
	enemy := archetypes.Enemy.Spawn(ecs, extra...)

	r := spawn.Rect
	x, y := float64(r.Min.X), float64(r.Min.Y)
	w, h := float64(r.Dx()), float64(r.Dy())
	obj := resolv.NewObject(x, y, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags("character", tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	components.Space.Get(room).Add(obj)

	hp := spawn.HP
	if hp <= 0 {
		hp = cfg.Enemy.Health
	}
	components.Enemy.SetValue(enemy, components.EnemyData{
		Name:           spawn.Name,
		Room:           room,
		Mask:           gamemath.SolidMask(r.Dx(), r.Dy()),
		HurtTick:       components.Never,
		WeaponHurtTick: components.Never,
	})
	components.Health.SetValue(enemy, components.HealthData{Current: hp, Max: hp})

	if spawn.Bullet != "" {
		interval := spawn.Interval
		if interval <= 0 {
			interval = cfg.Enemy.ShootInterval
		}
		components.Shooter.SetValue(enemy, components.ShooterData{
			Bullet:   spawn.Bullet,
			Damage:   spawn.Damage,
			Interval: interval,
			Cooldown: interval,
		})
	}

	return enemy
}
