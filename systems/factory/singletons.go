package factory

import (
	"github.com/automoto/dungeonblades/archetypes"
	"github.com/automoto/dungeonblades/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBulletManager spawns the shared bullet collection.
func CreateBulletManager(ecs *ecs.ECS) *donburi.Entry {
	manager := archetypes.BulletManager.Spawn(ecs)
	components.BulletList.SetValue(manager, components.BulletListData{})
	return manager
}

// CreateWorld spawns the world singleton with room as the active room.
func CreateWorld(ecs *ecs.ECS, room *donburi.Entry) *donburi.Entry {
	world := ecs.World.Entry(ecs.World.Create(components.World))
	components.World.SetValue(world, components.WorldData{ActiveRoom: room})
	return world
}

// CreateArsenal stores the loaded weapon and bullet catalogs.
func CreateArsenal(ecs *ecs.ECS, data components.ArsenalData) *donburi.Entry {
	arsenal := ecs.World.Entry(ecs.World.Create(components.Arsenal))
	components.Arsenal.SetValue(arsenal, data)
	return arsenal
}
