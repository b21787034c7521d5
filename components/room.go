package components

import (
	"github.com/yohamta/donburi"
)

type RoomData struct {
	Name  string
	Index int
}

var Room = donburi.NewComponentType[RoomData]()

// WorldData tracks which room is simulated and drawn (singleton component).
type WorldData struct {
	ActiveRoom *donburi.Entry
	Switching  bool // true for the frame a room change happens
}

var World = donburi.NewComponentType[WorldData]()
