package systems

import (
	"github.com/automoto/dungeonblades/components"
	cfg "github.com/automoto/dungeonblades/config"
	"github.com/automoto/dungeonblades/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths removes dead enemies from the world once their corpse delay
// has run out. Bullets they fired keep flying; their Master entry is simply
// no longer valid.
func UpdateDeaths(ecs *ecs.ECS) {
	now := Now(ecs)
	var toRemove []*donburi.Entry

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.Dead && now-enemy.DiedTick >= cfg.Enemy.CorpseTicks {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		if obj := components.Object.Get(e); obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
		e.Remove()
	}
}
