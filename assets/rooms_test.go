package assets

import (
	"image"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRoomTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="64" tileheight="64" infinite="0" nextlayerid="5" nextobjectid="6">
 <objectgroup id="1" name="walls">
  <object id="1" x="0" y="0" width="256" height="64"/>
 </objectgroup>
 <objectgroup id="2" name="weapons">
  <object id="2" x="100" y="120">
   <properties>
    <property name="weapon" value="katana"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="enemies">
  <object id="3" name="imp" x="10" y="20" width="48" height="48">
   <properties>
    <property name="hp" type="int" value="80"/>
    <property name="bullet" value="imp"/>
    <property name="interval" type="int" value="30"/>
   </properties>
  </object>
  <object id="4" name="dummy" x="150" y="20" width="32" height="32"/>
 </objectgroup>
 <objectgroup id="4" name="player">
  <object id="5" x="64" y="128"/>
 </objectgroup>
</map>
`

func TestLoadRoom(t *testing.T) {
	fsys := fstest.MapFS{
		"rooms/hall.tmx": {Data: []byte(testRoomTMX)},
	}

	room, err := LoadRoom(fsys, "rooms/hall.tmx")
	require.NoError(t, err)

	assert.Equal(t, "hall", room.Name)
	assert.Equal(t, 256, room.Width)
	assert.Equal(t, 192, room.Height)
	assert.Equal(t, []image.Rectangle{image.Rect(0, 0, 256, 64)}, room.Walls)
	assert.Equal(t, []WeaponSpawn{{Name: "katana", X: 100, Y: 120}}, room.Weapons)
	assert.Equal(t, image.Pt(64, 128), room.PlayerSpawn)

	require.Len(t, room.Enemies, 2)
	imp := room.Enemies[0]
	assert.Equal(t, "imp", imp.Name)
	assert.Equal(t, image.Rect(10, 20, 58, 68), imp.Rect)
	assert.Equal(t, 80, imp.HP)
	assert.Equal(t, "imp", imp.Bullet)
	assert.Equal(t, 30, imp.Interval)

	assert.Equal(t, 100, room.Enemies[1].HP, "hp defaults when unset")
	assert.Empty(t, room.Enemies[1].Bullet)
}

func TestLoadRoomMissing(t *testing.T) {
	_, err := LoadRoom(fstest.MapFS{}, "rooms/none.tmx")
	assert.Error(t, err)
}

func TestLoadRoomRejectsInfiniteMaps(t *testing.T) {
	fsys := fstest.MapFS{
		"rooms/open.tmx": {Data: []byte(strings.Replace(testRoomTMX, `infinite="0"`, `infinite="1"`, 1))},
	}

	_, err := LoadRoom(fsys, "rooms/open.tmx")
	assert.ErrorIs(t, err, ErrInfiniteRoom)
}

func TestLoadRoomsSorted(t *testing.T) {
	fsys := fstest.MapFS{
		"rooms/b.tmx": {Data: []byte(testRoomTMX)},
		"rooms/a.tmx": {Data: []byte(testRoomTMX)},
	}
	rooms, err := LoadRooms(fsys, "rooms")
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "a", rooms[0].Name)
	assert.Equal(t, "b", rooms[1].Name)
}

func TestLoadRoomsOrDefault(t *testing.T) {
	rooms, err := LoadRoomsOrDefault(fstest.MapFS{})
	require.NoError(t, err)
	assert.Equal(t, DefaultRooms(), rooms)

	for _, r := range rooms {
		assert.Len(t, r.Walls, 4+map[string]int{"pit": 1}[r.Name], r.Name)
	}
}

func TestEmbeddedRooms(t *testing.T) {
	rooms, err := LoadRoomsOrDefault(Embedded())
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "armory", rooms[0].Name)
	assert.Equal(t, "pit", rooms[1].Name)
	assert.Len(t, rooms[0].Weapons, 4)
	assert.Len(t, rooms[1].Enemies, 3)
}
