package components

import (
	"github.com/automoto/dungeonblades/shared/gamemath"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Name string
	Room *donburi.Entry
	Mask *gamemath.Mask // pixel hitbox aligned with the collision object

	Dead           bool
	Hurt           bool
	HurtTick       int // last hit of any kind
	WeaponHurtTick int // last melee hit
	DiedTick       int
}

var Enemy = donburi.NewComponentType[EnemyData]()

// ShooterData makes an enemy fire bullets at the player on a fixed interval.
type ShooterData struct {
	Bullet   string // bullet kind from the bullet catalog
	Damage   int    // used by bullets that take their damage from the shooter
	Interval int    // frames between shots
	Cooldown int    // frames until the next shot
}

var Shooter = donburi.NewComponentType[ShooterData]()
