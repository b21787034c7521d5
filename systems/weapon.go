package systems

import (
	"image"
	"math"

	"github.com/automoto/dungeonblades/components"
	cfg "github.com/automoto/dungeonblades/config"
	"github.com/automoto/dungeonblades/prefabs"
	"github.com/automoto/dungeonblades/shared/gamemath"
	"github.com/automoto/dungeonblades/systems/factory"
	"github.com/automoto/dungeonblades/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WeaponBehavior is what a held weapon does each frame.
type WeaponBehavior interface {
	PlayerUpdate(ecs *ecs.ECS, weapon, player *donburi.Entry)
}

// MeleeSwing aims at the pointer and, while the wielder attacks, sweeps
// through one swing cycle damaging enemies under its hitbox.
type MeleeSwing struct{}

func (MeleeSwing) PlayerUpdate(ecs *ecs.ECS, weapon, player *donburi.Entry) {
	p := components.Player.Get(player)
	if !p.Attacking {
		AimWeapon(ecs, weapon, player)
		return
	}

	SwingWeapon(ecs, weapon, player)
	ResolveMeleeHits(ecs, weapon, player)
	if components.Weapon.Get(weapon).Spec.SwingSound {
		PlaySFX(ecs, cfg.SoundSword)
	}
	if components.Swing.Get(weapon).Counter >= cfg.Combat.SwingFrames {
		endSwing(weapon, player)
	}
}

// Spread fires a vertical fan of pellets, one per attack press.
type Spread struct{}

func (Spread) PlayerUpdate(ecs *ecs.ECS, weapon, player *donburi.Entry) {
	aimAndFire(ecs, weapon, player)
}

// SingleShot fires one bullet per attack press.
type SingleShot struct{}

func (SingleShot) PlayerUpdate(ecs *ecs.ECS, weapon, player *donburi.Entry) {
	aimAndFire(ecs, weapon, player)
}

func aimAndFire(ecs *ecs.ECS, weapon, player *donburi.Entry) {
	AimWeapon(ecs, weapon, player)
	p := components.Player.Get(player)
	if p.Attacking {
		FireWeapon(ecs, weapon)
		p.Attacking = false
	}
}

// BehaviorFor returns the behavior named by a weapon definition.
func BehaviorFor(spec prefabs.WeaponSpec) WeaponBehavior {
	switch spec.Behavior {
	case prefabs.BehaviorSpread:
		return Spread{}
	case prefabs.BehaviorSingleShot:
		return SingleShot{}
	default:
		return MeleeSwing{}
	}
}

// SpecialEffect runs before melee damage lands on an enemy. Returning false
// cancels the hit.
type SpecialEffect func(w *components.WeaponData, enemy *donburi.Entry) bool

// SpecialEffects maps a weapon definition's special field to its hook.
var SpecialEffects = map[string]SpecialEffect{
	"once_per_swing": oncePerSwing,
}

// oncePerSwing lets each enemy take damage from a weapon once per swing.
func oncePerSwing(w *components.WeaponData, enemy *donburi.Entry) bool {
	if w.HitThisSwing[enemy.Entity()] {
		return false
	}
	w.HitThisSwing[enemy.Entity()] = true
	return true
}

// ResolveMeleeHits damages every live, vulnerable enemy in the active room
// whose mask overlaps the weapon's current hitbox.
func ResolveMeleeHits(ecs *ecs.ECS, weapon, player *donburi.Entry) {
	w := components.Weapon.Get(weapon)
	p := components.Player.Get(player)
	room := ActiveRoom(ecs)
	now := Now(ecs)
	effect := SpecialEffects[w.Spec.Special]

	tags.Enemy.Each(ecs.World, func(enemy *donburi.Entry) {
		e := components.Enemy.Get(enemy)
		if e.Dead || e.Room != room || !vulnerableToWeapon(e, now) {
			return
		}
		if !gamemath.MasksCollide(w.Mask, w.Rect, e.Mask, components.Object.Get(enemy).Rect()) {
			return
		}
		if effect != nil && !effect(w, enemy) {
			return
		}

		damageEnemy(ecs, enemy, int(math.Round(float64(w.Spec.Damage)*p.Strength)))
		PlaySFX(ecs, cfg.SoundHit)
	})
}

// EquipWeapon moves an unheld weapon into the player's inventory. It is a
// no-op for a weapon that is already held.
func EquipWeapon(ecs *ecs.ECS, weapon, player *donburi.Entry) {
	w := components.Weapon.Get(weapon)
	if w.Owner.IsHeld() {
		return
	}

	ResetSwing(weapon)
	if obj := components.Object.Get(weapon); obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	w.Owner = components.OwnedByPlayer(player)
	w.Interaction = false
	w.Hop = nil
	w.HopY = 0

	swing := components.Swing.Get(weapon)
	swing.HandX, swing.HandY = 0, cfg.Combat.HandOffsetY

	p := components.Player.Get(player)
	p.Items = append(p.Items, weapon)
	if p.Weapon == nil {
		p.Weapon = weapon
	}
	PlaySFX(ecs, cfg.SoundPickup)
}

// DropWeapon puts a held weapon down in the active room at the player's
// position. The most recently picked up remaining item becomes active.
func DropWeapon(ecs *ecs.ECS, weapon *donburi.Entry) {
	w := components.Weapon.Get(weapon)
	player, ok := w.Owner.Player()
	if !ok {
		return
	}
	room := ActiveRoom(ecs)
	PlaySFX(ecs, cfg.SoundDrop)

	p := components.Player.Get(player)
	p.RemoveItem(weapon)
	p.Weapon = nil
	if len(p.Items) > 0 {
		p.Weapon = p.Items[len(p.Items)-1]
	}

	if w.Mirrored {
		w.Original = gamemath.FlipHorizontal(w.Original)
		w.Mirrored = false
	}
	components.Sprite.Get(weapon).SetSource(currentFrame(w))
	w.Owner = components.OwnedByRoom(room)
	w.Image = nil
	w.Rect = image.Rectangle{Min: components.Object.Get(player).Rect().Min}
	orientIdle(weapon)
	w.Hop = factory.NewDropHop()

	ResetSwing(weapon)
	swing := components.Swing.Get(weapon)
	swing.Angle = 0
	swing.HandX, swing.HandY = 0, cfg.Combat.DroppedHandOffsetY

	if space := RoomSpace(room); space != nil {
		space.Add(components.Object.Get(weapon).Object)
	}
}

// CycleWeapon makes the next inventory item active. It does nothing while
// the player is mid-attack.
func CycleWeapon(ecs *ecs.ECS, player *donburi.Entry) {
	p := components.Player.Get(player)
	if len(p.Items) < 2 || p.Attacking {
		return
	}

	next := 0
	for i, it := range p.Items {
		if it == p.Weapon {
			next = (i + 1) % len(p.Items)
			break
		}
	}
	if p.Weapon != nil {
		ResetSwing(p.Weapon)
	}
	p.Weapon = p.Items[next]
}

// UpdateWeapons runs the player's active weapon and every unheld weapon in
// the active room. Held weapons that are not active are left alone.
func UpdateWeapons(ecs *ecs.ECS) {
	room := ActiveRoom(ecs)
	dt := float32(1.0 / float64(cfg.C.TPS))

	tags.Weapon.Each(ecs.World, func(weapon *donburi.Entry) {
		w := components.Weapon.Get(weapon)
		animateWeapon(weapon, w)

		if player, ok := w.Owner.Player(); ok {
			if components.Player.Get(player).Weapon != weapon {
				return
			}
			w.Interaction = false
			BehaviorFor(w.Spec).PlayerUpdate(ecs, weapon, player)
			return
		}

		if r, ok := w.Owner.Room(); ok && r == room {
			updateIdleWeapon(ecs, weapon, w, dt)
		}
	})
}

// animateWeapon steps multi-frame sprites.
func animateWeapon(weapon *donburi.Entry, w *components.WeaponData) {
	if len(w.Frames) == 0 {
		return
	}
	prev := int(w.Frame)
	w.Frame += w.Spec.FrameStep
	if w.Frame >= float64(len(w.Frames)) {
		w.Frame = 0
	}
	if int(w.Frame) != prev {
		components.Sprite.Get(weapon).SetSource(currentFrame(w))
	}
}

func updateIdleWeapon(ecs *ecs.ECS, weapon *donburi.Entry, w *components.WeaponData, dt float32) {
	tw := components.Tween.Get(weapon)
	y, _, done := tw.Update(dt)
	if done {
		tw.Reset()
	}
	w.HoverY = float64(y)

	if w.Hop != nil {
		hop, finished := w.Hop.Update(dt)
		w.HopY = float64(hop)
		if finished {
			w.Hop = nil
			w.HopY = 0
		}
	}

	orientIdle(weapon)

	w.Interaction = false
	obj := components.Object.Get(weapon)
	if obj.Space == nil {
		return
	}
	if c := obj.Check(0, 0, tags.ResolvPlayer); c != nil {
		for _, o := range c.ObjectsByTags(tags.ResolvPlayer) {
			if player, ok := o.Data.(*donburi.Entry); ok && components.Object.Get(player).Rect().Overlaps(w.Rect) {
				w.Interaction = true
			}
		}
	}
}

// InteractingWeapon returns the unheld weapon the player currently
// overlaps in the active room, if any.
func InteractingWeapon(ecs *ecs.ECS) (*donburi.Entry, bool) {
	room := ActiveRoom(ecs)
	var found *donburi.Entry
	tags.Weapon.Each(ecs.World, func(weapon *donburi.Entry) {
		w := components.Weapon.Get(weapon)
		if found != nil || !w.Interaction {
			return
		}
		if r, ok := w.Owner.Room(); ok && r == room {
			found = weapon
		}
	})
	return found, found != nil
}
