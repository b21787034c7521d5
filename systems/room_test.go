package systems

import (
	"image"
	"testing"

	"github.com/automoto/dungeonblades/components"
	cfg "github.com/automoto/dungeonblades/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

func press(e *ecs.ECS, action cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[action] = true
}

func release(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
}

func TestSetActiveRoomMovesPlayer(t *testing.T) {
	a := newArena(t)
	other := a.addRoom("other")

	SetActiveRoom(a.ecs, other)

	assert.Equal(t, other, ActiveRoom(a.ecs))
	assert.Same(t, RoomSpace(other), components.Object.Get(a.player).Space)

	world, ok := components.World.First(a.ecs.World)
	require.True(t, ok)
	assert.True(t, components.World.Get(world).Switching)
	UpdateRooms(a.ecs)
	assert.False(t, components.World.Get(world).Switching)
}

func TestNextRoomCycles(t *testing.T) {
	a := newArena(t)
	second := a.addRoom("second")

	press(a.ecs, cfg.ActionNextRoom)
	UpdateRooms(a.ecs)
	assert.Equal(t, second, ActiveRoom(a.ecs))

	UpdateRooms(a.ecs) // clears the switch flag
	release(a.ecs)
	press(a.ecs, cfg.ActionNextRoom)
	UpdateRooms(a.ecs)
	assert.Equal(t, a.room, ActiveRoom(a.ecs))
}

func TestWeaponsOutsideActiveRoomStayIdle(t *testing.T) {
	a := newArena(t)
	other := a.addRoom("other")
	weapon := a.weapon(t, other, meleeSpec(10), image.Pt(40, 40))

	for i := 0; i < 10; i++ {
		UpdateWeapons(a.ecs)
	}

	assert.Zero(t, components.Weapon.Get(weapon).HoverY)
}

func TestPlayerPicksUpAndDrops(t *testing.T) {
	a := newArena(t)
	weapon := a.weapon(t, a.room, meleeSpec(10), a.playerRect().Min)
	UpdateWeapons(a.ecs)

	press(a.ecs, cfg.ActionInteract)
	UpdatePlayer(a.ecs)
	p := components.Player.Get(a.player)
	require.Equal(t, weapon, p.Weapon)

	press(a.ecs, cfg.ActionAttack)
	UpdatePlayer(a.ecs)
	assert.True(t, p.Attacking)

	// No dropping mid-swing
	press(a.ecs, cfg.ActionDrop)
	UpdatePlayer(a.ecs)
	assert.Equal(t, weapon, p.Weapon)

	p.Attacking = false
	release(a.ecs)
	press(a.ecs, cfg.ActionDrop)
	UpdatePlayer(a.ecs)
	assert.Nil(t, p.Weapon)
	assert.False(t, components.Weapon.Get(weapon).Owner.IsHeld())
}

func TestPlayerMovementStopsAtWalls(t *testing.T) {
	a := newArena(t)
	r := a.playerRect()
	a.wall(a.room, image.Rect(r.Max.X+6, 0, r.Max.X+70, 896))

	getOrCreateInput(a.ecs).Current[cfg.ActionMoveRight] = true
	UpdatePlayer(a.ecs)
	assert.Equal(t, r.Min.X+int(cfg.Input.MoveSpeed), a.playerRect().Min.X)

	UpdatePlayer(a.ecs)
	assert.Equal(t, r.Min.X+int(cfg.Input.MoveSpeed), a.playerRect().Min.X, "blocked by the wall")

	input := getOrCreateInput(a.ecs)
	input.Current[cfg.ActionMoveRight] = false
	input.Current[cfg.ActionMoveDown] = true
	UpdatePlayer(a.ecs)
	assert.Equal(t, r.Min.Y+int(cfg.Input.MoveSpeed), a.playerRect().Min.Y)
}
