package factory

import (
	"image"

	"github.com/automoto/dungeonblades/archetypes"
	"github.com/automoto/dungeonblades/components"
	"github.com/automoto/dungeonblades/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, room *donburi.Entry, r image.Rectangle) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	x, y := float64(r.Min.X), float64(r.Min.Y)
	w, h := float64(r.Dx()), float64(r.Dy())
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	components.Space.Get(room).Add(obj)

	return wall
}
