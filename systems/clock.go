package systems

import (
	"github.com/automoto/dungeonblades/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the frame clock. It runs first so every timestamp
// written during a frame carries the same tick.
func UpdateClock(ecs *ecs.ECS) {
	getOrCreateClock(ecs).Tick++
}

// Now returns the current frame tick.
func Now(ecs *ecs.ECS) int {
	return getOrCreateClock(ecs).Tick
}

func getOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
