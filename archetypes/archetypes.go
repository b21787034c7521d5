package archetypes

import (
	"github.com/automoto/dungeonblades/components"
	cfg "github.com/automoto/dungeonblades/config"
	"github.com/automoto/dungeonblades/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Room = newArchetype(
		tags.Room,
		components.Room,
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
	)
	Weapon = newArchetype(
		tags.Weapon,
		components.Weapon,
		components.Swing,
		components.Object,
		components.Sprite,
		components.Tween,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Object,
	)
	BulletManager = newArchetype(
		tags.BulletManager,
		components.BulletList,
	)
	Particle = newArchetype(
		components.Particle,
		components.AutoDestroy,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
