package scenes

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/automoto/dungeonblades/assets"
	"github.com/automoto/dungeonblades/components"
	"github.com/automoto/dungeonblades/prefabs"
	"github.com/automoto/dungeonblades/systems"
	"github.com/automoto/dungeonblades/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestNewCombatWorld(t *testing.T) {
	prefabs.SetOverrideDir("")

	world, err := NewCombatWorld(Options{})
	require.NoError(t, err)

	var rooms []string
	tags.Room.Each(world.World, func(e *donburi.Entry) {
		rooms = append(rooms, components.Room.Get(e).Name)
	})
	assert.ElementsMatch(t, []string{"armory", "pit"}, rooms)

	active := systems.ActiveRoom(world)
	require.NotNil(t, active)
	assert.Equal(t, "armory", components.Room.Get(active).Name)

	player, ok := tags.Player.First(world.World)
	require.True(t, ok)
	assert.Same(t, systems.RoomSpace(active), components.Object.Get(player).Space)

	weapons := 0
	tags.Weapon.Each(world.World, func(e *donburi.Entry) {
		weapons++
		room, ok := components.Weapon.Get(e).Owner.Room()
		assert.True(t, ok)
		assert.NotNil(t, room)
	})
	assert.Equal(t, 6, weapons)

	_, ok = tags.BulletManager.First(world.World)
	assert.True(t, ok)
}

func TestNewCombatWorldStartRoom(t *testing.T) {
	prefabs.SetOverrideDir("")

	world, err := NewCombatWorld(Options{StartRoom: "pit"})
	require.NoError(t, err)
	assert.Equal(t, "pit", components.Room.Get(systems.ActiveRoom(world)).Name)

	_, err = NewCombatWorld(Options{StartRoom: "cellar"})
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestNewCombatWorldNeedsWeaponSprites(t *testing.T) {
	prefabs.SetOverrideDir("")

	_, err := NewCombatWorld(Options{Assets: fstest.MapFS{}})
	assert.ErrorIs(t, err, assets.ErrUnknownWeapon)
}
