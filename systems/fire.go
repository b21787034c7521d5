package systems

import (
	"github.com/automoto/dungeonblades/components"
	"github.com/automoto/dungeonblades/shared/gamemath"
	"github.com/automoto/dungeonblades/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// FireWeapon spawns the weapon's pellets at its muzzle, aimed at the
// pointer. The muzzle is a corner of the hitbox picked from the swing
// angle; pellets are stacked vertically, spread pixels apart.
func FireWeapon(ecs *ecs.ECS, weapon *donburi.Entry) []*donburi.Entry {
	w := components.Weapon.Get(weapon)
	swing := components.Swing.Get(weapon)

	collection := weapon
	if !w.Spec.OwnBullets || !weapon.HasComponent(components.BulletList) {
		manager, ok := tags.BulletManager.First(ecs.World)
		if !ok {
			return nil
		}
		collection = manager
	}

	x, y := gamemath.FiringPosition(swing.Angle, w.Hitbox(), w.Spec.MuzzleDrop)
	px, py := Pointer(ecs)
	target := dmath.Vec2{X: px, Y: py}
	room := ActiveRoom(ecs)

	n := w.Spec.Pellets
	if n < 1 {
		n = 1
	}
	spawned := make([]*donburi.Entry, 0, n)
	for i := 0; i < n; i++ {
		dy := (float64(i) - float64(n-1)/2) * w.Spec.Spread
		b := SpawnBullet(ecs, w.Bullet, weapon, room, float64(x), float64(y)+dy, target, collection)
		spawned = append(spawned, b)
	}
	return spawned
}
