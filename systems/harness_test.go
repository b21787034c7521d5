package systems

import (
	"image"
	"image/color"

	"github.com/automoto/dungeonblades/assets"
	"github.com/automoto/dungeonblades/components"
	cfg "github.com/automoto/dungeonblades/config"
	"github.com/automoto/dungeonblades/prefabs"
	"github.com/automoto/dungeonblades/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// arena is a headless world with one empty room, the player standing at
// (600, 600) and the shared bullet manager.
type arena struct {
	ecs     *ecs.ECS
	room    *donburi.Entry
	player  *donburi.Entry
	manager *donburi.Entry
	arsenal components.ArsenalData
}

func newArena(t require.TestingT) *arena {
	prefabs.SetOverrideDir("")
	SetSeed(42)
	bullets, err := prefabs.LoadBullets()
	require.NoError(t, err)
	weapons, err := prefabs.LoadWeapons(bullets)
	require.NoError(t, err)

	e := ecs.NewECS(donburi.NewWorld())
	a := &arena{
		ecs:     e,
		arsenal: components.ArsenalData{Weapons: weapons, Bullets: bullets},
	}
	factory.CreateArsenal(e, a.arsenal)
	a.room = factory.CreateRoom(e, "arena", 0, cfg.C.Width, cfg.C.Height)
	factory.CreateWorld(e, a.room)
	a.manager = factory.CreateBulletManager(e)
	a.player = factory.CreatePlayer(e, a.room, 600, 600)
	return a
}

// addRoom creates another, inactive room.
func (a *arena) addRoom(name string) *donburi.Entry {
	return factory.CreateRoom(a.ecs, name, components.Room.Get(a.room).Index+1, cfg.C.Width, cfg.C.Height)
}

// opaqueSprite is a fully opaque w*h sprite.
func opaqueSprite(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 180, G: 180, B: 200, A: 255})
		}
	}
	return img
}

// weapon lays a weapon from spec at pos in room.
func (a *arena) weapon(t require.TestingT, room *donburi.Entry, spec prefabs.WeaponSpec, pos image.Point) *donburi.Entry {
	var bullet prefabs.BulletSpec
	if spec.Ranged() {
		var err error
		bullet, err = a.arsenal.Bullets.Find(spec.Bullet)
		require.NoError(t, err)
	}
	return factory.CreateWeapon(a.ecs, room, spec, bullet, []image.Image{opaqueSprite(12, 40)}, pos)
}

// catalogWeapon lays a weapon from the embedded catalog.
func (a *arena) catalogWeapon(t require.TestingT, name string) *donburi.Entry {
	spec, err := a.arsenal.Weapons.Find(name)
	require.NoError(t, err)
	return a.weapon(t, a.room, spec, image.Pt(100, 100))
}

// equipped gives the player a weapon built from spec and aims it.
func (a *arena) equipped(t require.TestingT, spec prefabs.WeaponSpec) *donburi.Entry {
	w := a.weapon(t, a.room, spec, image.Pt(100, 100))
	EquipWeapon(a.ecs, w, a.player)
	AimWeapon(a.ecs, w, a.player)
	return w
}

func (a *arena) enemy(room *donburi.Entry, r image.Rectangle, hp int) *donburi.Entry {
	return factory.CreateEnemy(a.ecs, room, assets.EnemySpawn{Name: "dummy", Rect: r, HP: hp})
}

func (a *arena) wall(room *donburi.Entry, r image.Rectangle) *donburi.Entry {
	return factory.CreateWall(a.ecs, room, r)
}

// bullet spawns a bullet into the bullet manager heading toward (tx, ty).
func (a *arena) bullet(spec prefabs.BulletSpec, room *donburi.Entry, x, y, tx, ty float64) *donburi.Entry {
	return SpawnBullet(a.ecs, spec, nil, room, x, y, dmath.Vec2{X: tx, Y: ty}, a.manager)
}

func (a *arena) playerRect() image.Rectangle {
	return components.Object.Get(a.player).Rect()
}

func countSounds(e *ecs.ECS, id cfg.SoundID) int {
	n := 0
	for _, s := range PendingSounds(e) {
		if s == id {
			n++
		}
	}
	return n
}

// plainBullet is a bullet that only threatens the player and never bounces.
func plainBullet() prefabs.BulletSpec {
	return prefabs.BulletSpec{Kind: "plain", Speed: 5, Size: 7, Threat: prefabs.ThreatPlayer, Damage: 10}
}

func meleeSpec(damage int) prefabs.WeaponSpec {
	return prefabs.WeaponSpec{Name: "blade", Behavior: prefabs.BehaviorMelee, Damage: damage}
}

// withConfig overrides a config value for the duration of a test.
func withConfig[T any](t interface{ Cleanup(func()) }, field *T, value T) {
	prev := *field
	*field = value
	t.Cleanup(func() { *field = prev })
}
