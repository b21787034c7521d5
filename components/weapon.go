package components

import (
	"image"

	"github.com/automoto/dungeonblades/prefabs"
	"github.com/automoto/dungeonblades/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// OwnerKind tells which side of the Owner union is set.
type OwnerKind int

const (
	OwnerRoom OwnerKind = iota
	OwnerPlayer
)

// Owner is held by exactly one player or lies in exactly one room.
type Owner struct {
	Kind  OwnerKind
	Entry *donburi.Entry
}

func OwnedByRoom(room *donburi.Entry) Owner {
	return Owner{Kind: OwnerRoom, Entry: room}
}

func OwnedByPlayer(player *donburi.Entry) Owner {
	return Owner{Kind: OwnerPlayer, Entry: player}
}

func (o Owner) IsHeld() bool {
	return o.Kind == OwnerPlayer
}

// Player returns the holding player, if any.
func (o Owner) Player() (*donburi.Entry, bool) {
	if o.Kind != OwnerPlayer {
		return nil, false
	}
	return o.Entry, o.Entry != nil
}

// Room returns the room the weapon lies in, if any.
func (o Owner) Room() (*donburi.Entry, bool) {
	if o.Kind != OwnerRoom {
		return nil, false
	}
	return o.Entry, o.Entry != nil
}

type WeaponData struct {
	Name   string
	Spec   prefabs.WeaponSpec
	Bullet prefabs.BulletSpec // fired by ranged weapons
	Owner  Owner

	// Original is the upright sprite at world scale. Melee weapons mirror it
	// at the end of every swing cycle.
	Original image.Image
	Mirrored bool
	Frames   []image.Image // animation frames, nil for still sprites
	Frame    float64

	// Current orientation, refreshed every update.
	Image image.Image
	Rect  image.Rectangle
	Mask  *gamemath.Mask

	Interaction  bool                    // player overlaps the unheld weapon
	HitThisSwing map[donburi.Entity]bool // enemies already struck this swing

	HoverY float64 // idle bob offset from the tween
	Hop    *gween.Tween
	HopY   float64
}

// Hitbox returns the bounds of the opaque pixels in world space.
func (w *WeaponData) Hitbox() image.Rectangle {
	if w.Mask == nil {
		return w.Rect
	}
	return w.Mask.BoundingRect().Add(w.Rect.Min)
}

var Weapon = donburi.NewComponentType[WeaponData]()

// SwingData is the aim/swing state of a weapon.
// Counter is 0 while aiming and counts swing ticks while swinging.
type SwingData struct {
	Angle   float64 // degrees
	Counter int
	Side    int // +1 or -1

	// Pivot offset from the wielder's center, rotated by -Angle each tick.
	OffsetX, OffsetY float64
	// Hand position relative to the wielder's center.
	HandX, HandY float64
}

var Swing = donburi.NewComponentType[SwingData]()
