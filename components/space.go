package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the collision space of a room entity.
var Space = donburi.NewComponentType[resolv.Space]()
