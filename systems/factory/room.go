package factory

import (
	"image"
	"log"

	"github.com/automoto/dungeonblades/archetypes"
	"github.com/automoto/dungeonblades/assets"
	"github.com/automoto/dungeonblades/components"
	"github.com/automoto/dungeonblades/prefabs"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRoom spawns a room entity with its own collision space.
func CreateRoom(ecs *ecs.ECS, name string, index, w, h int) *donburi.Entry {
	room := archetypes.Room.Spawn(ecs)
	components.Room.SetValue(room, components.RoomData{Name: name, Index: index})
	components.Space.Set(room, newRoomSpace(w, h))
	return room
}

// PopulateRoom creates a room from a layout with its walls, enemies and
// unheld weapons. Weapons missing from the catalog are skipped with a log
// line; a weapon without a sprite is fatal.
func PopulateRoom(ecs *ecs.ECS, layout *assets.RoomLayout, index int, images *assets.ImageLoader, arsenal *components.ArsenalData) *donburi.Entry {
	room := CreateRoom(ecs, layout.Name, index, layout.Width, layout.Height)

	for _, r := range layout.Walls {
		CreateWall(ecs, room, r)
	}

	for _, spawn := range layout.Enemies {
		CreateEnemy(ecs, room, spawn)
	}

	for _, spawn := range layout.Weapons {
		spec, err := arsenal.Weapons.Find(spawn.Name)
		if err != nil {
			log.Printf("room %s: %v", layout.Name, err)
			continue
		}
		w, h := spec.SizeWH()
		frames := images.MustLoadWeaponFrames(spec.Name, spec.Frames, w, h)
		var bullet prefabs.BulletSpec
		if spec.Ranged() {
			bullet, _ = arsenal.Bullets.Find(spec.Bullet)
		}
		CreateWeapon(ecs, room, spec, bullet, frames, image.Pt(spawn.X, spawn.Y))
	}

	return room
}
