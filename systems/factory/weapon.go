package factory

import (
	"image"

	"github.com/automoto/dungeonblades/archetypes"
	"github.com/automoto/dungeonblades/components"
	cfg "github.com/automoto/dungeonblades/config"
	"github.com/automoto/dungeonblades/prefabs"
	"github.com/automoto/dungeonblades/shared/gamemath"
	"github.com/automoto/dungeonblades/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWeapon spawns an unheld weapon lying in room with its top-left
// corner at pos. frames holds the upright sprite at world scale; more than
// one frame makes the weapon animate.
func CreateWeapon(ecs *ecs.ECS, room *donburi.Entry, spec prefabs.WeaponSpec, bullet prefabs.BulletSpec, frames []image.Image, pos image.Point) *donburi.Entry {
	var extra []donburi.IComponentType
	if spec.OwnBullets {
		extra = append(extra, components.BulletList)
	}
	weapon := archetypes.Weapon.Spawn(ecs, extra...)

	original := frames[0]
	rect := original.Bounds().Sub(original.Bounds().Min).Add(pos)

	data := components.WeaponData{
		Name:         spec.Name,
		Spec:         spec,
		Bullet:       bullet,
		Owner:        components.OwnedByRoom(room),
		Original:     original,
		Image:        original,
		Rect:         rect,
		Mask:         gamemath.MaskFromImage(original, cfg.Combat.MaskThreshold),
		HitThisSwing: make(map[donburi.Entity]bool),
	}
	if len(frames) > 1 {
		data.Frames = frames
	}
	components.Weapon.SetValue(weapon, data)

	components.Swing.SetValue(weapon, components.SwingData{
		Side:    1,
		OffsetY: cfg.Combat.PivotOffsetY,
		HandY:   cfg.Combat.DroppedHandOffsetY,
	})

	w, h := float64(rect.Dx()), float64(rect.Dy())
	obj := resolv.NewObject(float64(rect.Min.X), float64(rect.Min.Y), w, h, tags.ResolvWeapon)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = weapon
	components.Object.SetValue(weapon, components.ObjectData{Object: obj})
	components.Space.Get(room).Add(obj)

	components.Sprite.Get(weapon).SetSource(original)

	components.Tween.Set(weapon, NewHoverTween())

	return weapon
}

// NewHoverTween returns the idle bob: up by the hover amplitude and back.
func NewHoverTween() *gween.Sequence {
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, -cfg.Hover.Amplitude, cfg.Hover.Duration, ease.InOutSine),
		gween.New(-cfg.Hover.Amplitude, 0, cfg.Hover.Duration, ease.InOutSine),
	)
	return tw
}

// NewDropHop returns the arc a dropped weapon follows before it settles.
func NewDropHop() *gween.Tween {
	return gween.New(-cfg.Hover.DropHopHeight, 0, cfg.Hover.DropHopDuration, ease.OutBounce)
}
