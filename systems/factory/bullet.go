package factory

import (
	"github.com/automoto/dungeonblades/archetypes"
	"github.com/automoto/dungeonblades/components"
	"github.com/automoto/dungeonblades/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBullet spawns a bullet entity from data and registers its collision
// object in the bullet's room. The object is one pixel larger than the
// bullet so its bottom and right edges fall inside the queried cells.
func CreateBullet(ecs *ecs.ECS, data components.BulletData) *donburi.Entry {
	bullet := archetypes.Bullet.Spawn(ecs)

	r := data.Rect()
	size := float64(data.Size + 1)
	obj := resolv.NewObject(float64(r.Min.X), float64(r.Min.Y), size, size, tags.ResolvBullet)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = bullet
	components.Object.SetValue(bullet, components.ObjectData{Object: obj})
	if data.Room != nil && data.Room.Valid() {
		components.Space.Get(data.Room).Add(obj)
	}

	components.Bullet.SetValue(bullet, data)
	return bullet
}
