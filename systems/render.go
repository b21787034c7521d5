package systems

import (
	"fmt"
	"image"
	"image/color"

	"github.com/automoto/dungeonblades/components"
	cfg "github.com/automoto/dungeonblades/config"
	"github.com/automoto/dungeonblades/fonts"
	"github.com/automoto/dungeonblades/shared/gamemath"
	"github.com/automoto/dungeonblades/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	floorColor  = color.RGBA{R: 34, G: 32, B: 40, A: 255}
	playerColor = color.RGBA{R: 70, G: 130, B: 230, A: 255}
	enemyColor  = color.RGBA{R: 170, G: 40, B: 50, A: 255}
	corpseColor = color.RGBA{R: 70, G: 30, B: 35, A: 160}
)

// DrawRoom fills the floor and draws the walls of the active room.
func DrawRoom(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(floorColor)

	space := RoomSpace(ActiveRoom(ecs))
	if space == nil {
		return
	}
	for _, obj := range space.Objects() {
		if !obj.HasTags(tags.ResolvSolid) {
			continue
		}
		vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), cfg.Gray, false)
	}
}

// DrawEntities draws the enemies of the active room and the player.
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	room := ActiveRoom(ecs)
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.Room != room {
			return
		}
		clr := enemyColor
		switch {
		case enemy.Dead:
			clr = corpseColor
		case enemy.Hurt:
			clr = cfg.LightRed
		}
		fillRect(screen, components.Object.Get(e).Rect(), clr)
	})

	if player, ok := tags.Player.First(ecs.World); ok {
		clr := playerColor
		if components.Player.Get(player).Hurt {
			clr = cfg.White
		}
		fillRect(screen, components.Object.Get(player).Rect(), clr)
	}
}

// DrawWeapons draws unheld weapons in the active room with their shadow
// and price, then the player's active weapon on top.
func DrawWeapons(ecs *ecs.ECS, screen *ebiten.Image) {
	room := ActiveRoom(ecs)
	var held *donburi.Entry

	tags.Weapon.Each(ecs.World, func(weapon *donburi.Entry) {
		w := components.Weapon.Get(weapon)
		if player, ok := w.Owner.Player(); ok {
			if components.Player.Get(player).Weapon == weapon {
				held = weapon
			}
			return
		}
		if r, ok := w.Owner.Room(); !ok || r != room {
			return
		}
		drawIdleWeapon(screen, weapon, w)
	})

	if held != nil {
		drawHeldWeapon(screen, held)
	}
}

func drawIdleWeapon(screen *ebiten.Image, weapon *donburi.Entry, w *components.WeaponData) {
	img := components.Sprite.Get(weapon).EbitenImage()
	if img == nil {
		return
	}

	// Shadow shrinks as the weapon rises
	lift := -(w.HoverY + w.HopY)
	sw := float32(w.Rect.Dx()) * float32(1-lift/40)
	sx := float32(w.Rect.Min.X) + (float32(w.Rect.Dx())-sw)/2
	vector.FillRect(screen, sx, float32(w.Rect.Max.Y)+4, sw, 6, cfg.ShadowTint, false)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(float64(w.Rect.Min.X), float64(w.Rect.Min.Y)+w.HoverY+w.HopY)
	screen.DrawImage(img, drawOp)

	if w.Spec.Value > 0 && fonts.Loaded(fonts.Prompt) {
		price := fmt.Sprintf("%d", w.Spec.Value)
		face := fonts.Prompt.Get()
		b := text.BoundString(face, price)
		x := w.Rect.Min.X + (w.Rect.Dx()-b.Dx())/2
		text.Draw(screen, price, face, x, w.Rect.Max.Y+20+b.Dy(), cfg.Prompt.PriceColor)
	}
}

func drawHeldWeapon(screen *ebiten.Image, weapon *donburi.Entry) {
	sprite := components.Sprite.Get(weapon)
	img := sprite.EbitenImage()
	if img == nil {
		return
	}
	w := components.Weapon.Get(weapon)
	cx, cy := gamemath.Center(w.Rect)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-sprite.PivotX, -sprite.PivotY)
	drawOp.GeoM.Rotate(-gamemath.Radians(sprite.Rotation))
	drawOp.GeoM.Translate(cx, cy)
	drawOp.Filter = ebiten.FilterLinear
	screen.DrawImage(img, drawOp)
	drawOp.Filter = ebiten.FilterNearest
}

// DrawPrompts labels the unheld weapon the player is standing on.
func DrawPrompts(ecs *ecs.ECS, screen *ebiten.Image) {
	weapon, ok := InteractingWeapon(ecs)
	if !ok || !fonts.Loaded(fonts.Prompt) {
		return
	}
	w := components.Weapon.Get(weapon)
	face := fonts.Prompt.Get()
	label := fmt.Sprintf("[E] %s", w.Name)
	b := text.BoundString(face, label)

	pad := cfg.Prompt.Padding
	x := w.Rect.Min.X + (w.Rect.Dx()-b.Dx())/2
	y := w.Rect.Min.Y - 12 + int(w.HoverY)
	box := image.Rect(x-pad, y-b.Dy()-pad, x+b.Dx()+pad, y+pad)
	fillRect(screen, box, cfg.Prompt.ShadowColor)
	text.Draw(screen, label, face, x, y, cfg.Prompt.TextColor)
}

// DrawBullets draws every live bullet of the active room.
func DrawBullets(ecs *ecs.ECS, screen *ebiten.Image) {
	room := ActiveRoom(ecs)
	components.BulletList.Each(ecs.World, func(collection *donburi.Entry) {
		for _, bullet := range LiveBullets(collection) {
			b := components.Bullet.Get(bullet)
			if b.Room != room {
				continue
			}
			radius := float32(b.Spec.Radius)
			if radius <= 0 {
				radius = float32(b.Size) / 2
			}
			cx := float32(b.Pos.X) + float32(b.Size)/2
			cy := float32(b.Pos.Y) + float32(b.Size)/2
			vector.DrawFilledCircle(screen, cx, cy, radius, cfg.White, true)       //nolint:staticcheck
			vector.DrawFilledCircle(screen, cx, cy, radius-1, b.Spec.RGBA(), true) //nolint:staticcheck
		}
	})
}

// DrawParticles draws hit-impact particles.
func DrawParticles(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		vector.FillRect(screen, float32(p.X), float32(p.Y), p.Size, p.Size, p.Color, false)
	})
}

func fillRect(screen *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.FillRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}
