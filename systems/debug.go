package systems

import (
	"image"
	"image/color"

	"github.com/automoto/dungeonblades/components"
	cfg "github.com/automoto/dungeonblades/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines collision objects of the active room, weapon rects and
// hitboxes, and bullet rects.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Hitboxes {
		return
	}

	if space := RoomSpace(ActiveRoom(ecs)); space != nil {
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags("solid") {
				c = color.RGBA{100, 100, 100, 255}
			} else if obj.HasTags("Player") {
				c = color.RGBA{0, 0, 255, 255}
			} else if obj.HasTags("Enemy") {
				c = color.RGBA{255, 0, 0, 255}
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	components.Weapon.Each(ecs.World, func(e *donburi.Entry) {
		w := components.Weapon.Get(e)
		strokeRect(screen, w.Rect, cfg.Yellow)
		strokeRect(screen, w.Hitbox(), cfg.Magenta)
	})

	components.BulletList.Each(ecs.World, func(collection *donburi.Entry) {
		for _, bullet := range LiveBullets(collection) {
			strokeRect(screen, components.Bullet.Get(bullet).Rect(), cfg.Green)
		}
	})
}

func strokeRect(screen *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, clr, false)
}
