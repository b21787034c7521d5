package systems

import (
	"image"

	"github.com/automoto/dungeonblades/components"
	cfg "github.com/automoto/dungeonblades/config"
	"github.com/automoto/dungeonblades/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer moves the player and turns actions into weapon operations.
// Must run AFTER UpdateInput and BEFORE UpdateWeapons.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)
	player := components.Player.Get(playerEntry)

	movePlayer(playerEntry, input)

	if input.JustPressed(cfg.ActionAttack) && player.Weapon != nil && !player.Attacking {
		player.Attacking = true
	}
	if input.JustPressed(cfg.ActionInteract) {
		if weapon, ok := InteractingWeapon(ecs); ok {
			EquipWeapon(ecs, weapon, playerEntry)
		}
	}
	if input.JustPressed(cfg.ActionDrop) && player.Weapon != nil && !player.Attacking {
		DropWeapon(ecs, player.Weapon)
	}
	if input.JustPressed(cfg.ActionCycleWeapon) {
		CycleWeapon(ecs, playerEntry)
	}
	if input.JustPressed(cfg.ActionToggleDebug) {
		cfg.Debug.Hitboxes = !cfg.Debug.Hitboxes
	}

	if player.Hurt && Now(ecs)-player.HurtTick >= cfg.Enemy.HurtFlashTicks {
		player.Hurt = false
	}
}

func movePlayer(playerEntry *donburi.Entry, input *components.InputData) {
	var dx, dy float64
	if input.Pressed(cfg.ActionMoveLeft) {
		dx -= cfg.Input.MoveSpeed
	}
	if input.Pressed(cfg.ActionMoveRight) {
		dx += cfg.Input.MoveSpeed
	}
	if input.Pressed(cfg.ActionMoveUp) {
		dy -= cfg.Input.MoveSpeed
	}
	if input.Pressed(cfg.ActionMoveDown) {
		dy += cfg.Input.MoveSpeed
	}
	if dx == 0 && dy == 0 {
		return
	}

	obj := components.Object.Get(playerEntry)
	if dx != 0 && !blocked(obj, dx, 0) {
		obj.X += dx
	}
	if dy != 0 && !blocked(obj, 0, dy) {
		obj.Y += dy
	}
	obj.Update()
}

// blocked reports whether moving obj by (dx, dy) would overlap a wall.
func blocked(obj *components.ObjectData, dx, dy float64) bool {
	if obj.Space == nil {
		return false
	}
	c := obj.Check(dx, dy, tags.ResolvSolid)
	if c == nil {
		return false
	}
	next := obj.Rect().Add(image.Pt(int(dx), int(dy)))
	for _, wall := range c.ObjectsByTags(tags.ResolvSolid) {
		wr := image.Rect(int(wall.X), int(wall.Y), int(wall.X+wall.W), int(wall.Y+wall.H))
		if next.Overlaps(wr) {
			return true
		}
	}
	return false
}
