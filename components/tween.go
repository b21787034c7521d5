package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives the idle hover bob of an unheld weapon.
var Tween = donburi.NewComponentType[gween.Sequence]()
