package systems

import (
	"image"

	"github.com/automoto/dungeonblades/components"
	cfg "github.com/automoto/dungeonblades/config"
	"github.com/automoto/dungeonblades/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AimWeapon points a held weapon at the pointer. Its sprite, rect and mask
// are rebuilt from the new angle.
func AimWeapon(ecs *ecs.ECS, weapon, player *donburi.Entry) {
	swing := components.Swing.Get(weapon)
	cx, cy := gamemath.Center(components.Object.Get(player).Rect())
	px, py := Pointer(ecs)

	swing.Angle = gamemath.ComputeAngle(cx, cy, px, py, swing.Side, cfg.Combat.LeftSwing, cfg.Combat.RightSwing)
	swing.HandX, swing.HandY = gamemath.RotateOffset(0, cfg.Combat.HandOffsetY, swing.Angle)
	orientHeld(weapon, cx, cy)
}

// SwingWeapon advances one swing tick: the angle moves by a fixed step in
// the swing direction and the counter goes up by one.
func SwingWeapon(ecs *ecs.ECS, weapon, player *donburi.Entry) {
	swing := components.Swing.Get(weapon)
	cx, cy := gamemath.Center(components.Object.Get(player).Rect())

	swing.Angle += cfg.Combat.SwingStep * float64(swing.Side)
	orientHeld(weapon, cx, cy)
	swing.Counter++
}

// ResetSwing puts the weapon back in the aiming state.
func ResetSwing(weapon *donburi.Entry) {
	components.Swing.Get(weapon).Counter = 0
	clear(components.Weapon.Get(weapon).HitThisSwing)
}

// endSwing finishes a swing cycle: the sprite is mirrored for the next
// cycle and the wielder stops attacking.
func endSwing(weapon, player *donburi.Entry) {
	w := components.Weapon.Get(weapon)
	w.Original = gamemath.FlipHorizontal(w.Original)
	w.Mirrored = !w.Mirrored
	components.Sprite.Get(weapon).SetSource(w.Original)

	components.Player.Get(player).Attacking = false
	ResetSwing(weapon)
}

// orientHeld rotates the current sprite by the swing angle and centers it on
// the pivot offset around (cx, cy).
func orientHeld(weapon *donburi.Entry, cx, cy float64) {
	w := components.Weapon.Get(weapon)
	swing := components.Swing.Get(weapon)

	w.Image = gamemath.Rotate(currentFrame(w), swing.Angle)
	ox, oy := gamemath.RotateOffset(swing.OffsetX, swing.OffsetY, swing.Angle)
	w.Rect = gamemath.CenteredRect(cx+ox, cy+oy, w.Image.Bounds().Dx(), w.Image.Bounds().Dy())
	w.Mask = gamemath.MaskFromImage(w.Image, cfg.Combat.MaskThreshold)

	sprite := components.Sprite.Get(weapon)
	sprite.Rotation = swing.Angle
	syncWeaponObject(weapon)
}

// orientIdle lays the upright sprite at the weapon's resting position.
func orientIdle(weapon *donburi.Entry) {
	w := components.Weapon.Get(weapon)
	src := currentFrame(w)
	if w.Image != src {
		w.Image = src
		w.Mask = gamemath.MaskFromImage(src, cfg.Combat.MaskThreshold)
	}
	w.Rect = image.Rectangle{Min: w.Rect.Min, Max: w.Rect.Min.Add(src.Bounds().Size())}

	components.Sprite.Get(weapon).Rotation = 0
	syncWeaponObject(weapon)
}

func currentFrame(w *components.WeaponData) image.Image {
	if len(w.Frames) == 0 {
		return w.Original
	}
	return w.Frames[int(w.Frame)%len(w.Frames)]
}

func syncWeaponObject(weapon *donburi.Entry) {
	components.Object.Get(weapon).SetRect(components.Weapon.Get(weapon).Rect)
}
