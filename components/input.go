package components

import (
	cfg "github.com/automoto/dungeonblades/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	PointerX float64
	PointerY float64
}

func (in *InputData) Pressed(action cfg.ActionID) bool {
	return in.Current[action]
}

func (in *InputData) JustPressed(action cfg.ActionID) bool {
	return in.Current[action] && !in.Previous[action]
}

var Input = donburi.NewComponentType[InputData]()
