package systems

import (
	"sort"

	"github.com/automoto/dungeonblades/components"
	cfg "github.com/automoto/dungeonblades/config"
	"github.com/automoto/dungeonblades/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ActiveRoom returns the room currently simulated and drawn.
func ActiveRoom(ecs *ecs.ECS) *donburi.Entry {
	entry, ok := components.World.First(ecs.World)
	if !ok {
		return nil
	}
	return components.World.Get(entry).ActiveRoom
}

// SetActiveRoom switches the active room and moves the player's collision
// object into the new room's space. Bullets fired in the old room are
// pruned by their collections on the next update.
func SetActiveRoom(ecs *ecs.ECS, room *donburi.Entry) {
	entry, ok := components.World.First(ecs.World)
	if !ok {
		return
	}
	world := components.World.Get(entry)
	if world.ActiveRoom == room {
		return
	}
	world.ActiveRoom = room
	world.Switching = true

	if player, ok := tags.Player.First(ecs.World); ok {
		obj := components.Object.Get(player)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
		if space := RoomSpace(room); space != nil {
			space.Add(obj.Object)
		}
	}
}

// RoomSpace returns the collision space of room, or nil.
func RoomSpace(room *donburi.Entry) *resolv.Space {
	if room == nil || !room.Valid() || !room.HasComponent(components.Space) {
		return nil
	}
	return components.Space.Get(room)
}

// UpdateRooms clears the room-switch flag once a frame has passed and
// handles the next-room action.
func UpdateRooms(ecs *ecs.ECS) {
	entry, ok := components.World.First(ecs.World)
	if !ok {
		return
	}
	world := components.World.Get(entry)
	if world.Switching {
		world.Switching = false
		return
	}

	input := getOrCreateInput(ecs)
	if input.JustPressed(cfg.ActionNextRoom) {
		SetActiveRoom(ecs, nextRoom(ecs, world.ActiveRoom))
	}
}

func nextRoom(ecs *ecs.ECS, current *donburi.Entry) *donburi.Entry {
	var rooms []*donburi.Entry
	tags.Room.Each(ecs.World, func(e *donburi.Entry) {
		rooms = append(rooms, e)
	})
	if len(rooms) == 0 {
		return current
	}
	sort.Slice(rooms, func(i, j int) bool {
		return components.Room.Get(rooms[i]).Index < components.Room.Get(rooms[j]).Index
	})

	for i, r := range rooms {
		if r == current {
			return rooms[(i+1)%len(rooms)]
		}
	}
	return rooms[0]
}
