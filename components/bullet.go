package components

import (
	"image"
	"math"

	"github.com/automoto/dungeonblades/prefabs"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ThreatTarget is the collision set a bullet can damage.
type ThreatTarget int

const (
	ThreatPlayer ThreatTarget = iota
	ThreatEnemies
	ThreatBoth
)

func ParseThreat(s string) ThreatTarget {
	switch s {
	case prefabs.ThreatEnemies:
		return ThreatEnemies
	case prefabs.ThreatBoth:
		return ThreatBoth
	default:
		return ThreatPlayer
	}
}

func (t ThreatTarget) HitsPlayer() bool {
	return t == ThreatPlayer || t == ThreatBoth
}

func (t ThreatTarget) HitsEnemies() bool {
	return t == ThreatEnemies || t == ThreatBoth
}

func (t ThreatTarget) String() string {
	switch t {
	case ThreatEnemies:
		return "enemies"
	case ThreatBoth:
		return "both"
	default:
		return "player"
	}
}

type BulletData struct {
	Kind string
	Spec prefabs.BulletSpec

	Pos   dmath.Vec2 // sub-pixel position of the top-left corner
	Dir   dmath.Vec2 // unit direction
	Speed float64
	Size  int

	Damage     int
	BounceBack bool // can still be parried
	Threat     ThreatTarget

	Room       *donburi.Entry // room the bullet was fired in
	Master     *donburi.Entry // weapon or enemy that fired it
	Collection *donburi.Entry // entity whose BulletList holds it

	MaxX     float64 // right edge of the bounds box
	Rotation float64 // degrees, for spinning bullets

	Dead bool
	Age  int // frames alive
}

// Rect returns the bullet's integer bounds.
func (b *BulletData) Rect() image.Rectangle {
	x, y := int(math.Floor(b.Pos.X)), int(math.Floor(b.Pos.Y))
	return image.Rect(x, y, x+b.Size, y+b.Size)
}

var Bullet = donburi.NewComponentType[BulletData]()

// BulletListData is an ordered collection of live bullets. Killed bullets
// stay in place, flagged Dead, until the owning system compacts the list.
type BulletListData struct {
	Bullets []*donburi.Entry
}

var BulletList = donburi.NewComponentType[BulletListData]()

// ArsenalData holds the loaded weapon and bullet definitions (singleton component).
type ArsenalData struct {
	Weapons *prefabs.WeaponCatalog
	Bullets *prefabs.BulletCatalog
}

var Arsenal = donburi.NewComponentType[ArsenalData]()
