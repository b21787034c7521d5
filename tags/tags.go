package tags

import "github.com/yohamta/donburi"

var (
	Player        = donburi.NewTag().SetName("Player")
	Wall          = donburi.NewTag().SetName("Wall")
	Enemy         = donburi.NewTag().SetName("Enemy")
	Room          = donburi.NewTag().SetName("Room")
	Weapon        = donburi.NewTag().SetName("Weapon")
	Bullet        = donburi.NewTag().SetName("Bullet")
	BulletManager = donburi.NewTag().SetName("BulletManager")
)

// Resolv tags for collision queries
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvWeapon = "Weapon"
	ResolvBullet = "Bullet"
)
