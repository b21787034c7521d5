package factory

import (
	"github.com/automoto/dungeonblades/archetypes"
	"github.com/automoto/dungeonblades/components"
	cfg "github.com/automoto/dungeonblades/config"
	"github.com/automoto/dungeonblades/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player centered on (x, y) inside room.
func CreatePlayer(ecs *ecs.ECS, room *donburi.Entry, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := float64(cfg.Player.Width), float64(cfg.Player.Height)
	obj := resolv.NewObject(x-w/2, y-h/2, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	if room != nil {
		components.Space.Get(room).Add(obj)
	}

	components.Player.SetValue(player, components.PlayerData{
		Strength: cfg.Player.Strength,
		Shield:   cfg.Player.Shield,
		HurtTick: components.Never,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	return player
}
