package components

import (
	cfg "github.com/automoto/dungeonblades/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised during a frame (singleton component).
// The audio system drains the queue at the start of the next frame.
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
