package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/dungeonblades/components"
	cfg "github.com/automoto/dungeonblades/config"
	"github.com/automoto/dungeonblades/fonts"
	"github.com/automoto/dungeonblades/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
	shieldSize   = 9
	shieldGap    = 4
)

// DrawHUD renders the player's health bar, shield charges and the active
// weapon in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	hp := components.Health.Get(playerEntry)

	// Background (dark gray)
	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth), float32(hudBarHeight),
		color.RGBA{40, 40, 40, 255}, false)

	// Current HP (green)
	ratio := float32(0)
	if hp.Max > 0 {
		ratio = max(float32(hp.Current)/float32(hp.Max), 0)
	}
	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth)*ratio, float32(hudBarHeight),
		color.RGBA{40, 220, 40, 255}, false)

	// Shield charges
	y := float32(hudMargin + hudBarHeight + shieldGap)
	for i := 0; i < player.Shield; i++ {
		x := float32(hudMargin + i*(shieldSize+shieldGap))
		vector.FillRect(screen, x, y, shieldSize, shieldSize, cfg.Blue, false)
	}

	drawInventory(ecs, player, screen)
}

func drawInventory(ecs *ecs.ECS, player *components.PlayerData, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.Debug) {
		return
	}

	line := "unarmed"
	if player.Weapon != nil && player.Weapon.Valid() {
		line = fmt.Sprintf("%s (%d/%d)", components.Weapon.Get(player.Weapon).Name,
			indexOf(player.Items, player.Weapon)+1, len(player.Items))
	}
	if room := ActiveRoom(ecs); room != nil {
		line += "  " + components.Room.Get(room).Name
	}
	text.Draw(screen, line, fonts.Debug.Get(), hudMargin+hudBarWidth+hudMargin, hudMargin+hudBarHeight-2, cfg.White)
}

func indexOf(items []*donburi.Entry, item *donburi.Entry) int {
	for i, it := range items {
		if it == item {
			return i
		}
	}
	return -1
}
