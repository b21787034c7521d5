package assets

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"math"
	"path"
	"sort"
	"strings"

	cfg "github.com/automoto/dungeonblades/config"
	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from room maps.
const (
	WallsLayer   = "walls"
	WeaponsGroup = "weapons"
	EnemiesGroup = "enemies"
	PlayerGroup  = "player"

	RoomsDir = "rooms"
)

// ErrInfiniteRoom is returned for chunked (infinite) maps; rooms have a fixed size.
var ErrInfiniteRoom = errors.New("assets: infinite room maps are not supported")

// WeaponSpawn places an unheld weapon in a room.
type WeaponSpawn struct {
	Name string
	X, Y int
}

// EnemySpawn places an enemy in a room. Bullet is empty for enemies that
// do not shoot.
type EnemySpawn struct {
	Name     string
	Rect     image.Rectangle
	HP       int
	Bullet   string
	Damage   int
	Interval int
}

// RoomLayout is the combat-relevant content of one room map.
type RoomLayout struct {
	Name          string
	Width, Height int // pixels
	Walls         []image.Rectangle
	Weapons       []WeaponSpawn
	Enemies       []EnemySpawn
	PlayerSpawn   image.Point
}

// LoadRoom parses a TMX room. Walls come from a "walls" object group, a
// "walls" tile layer, or both.
func LoadRoom(fsys fs.FS, tmxPath string) (*RoomLayout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	if levelMap.Infinite {
		return nil, fmt.Errorf("room %s: %w", tmxPath, ErrInfiniteRoom)
	}

	room := &RoomLayout{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}
	room.PlayerSpawn = image.Pt(room.Width/2, room.Height/2)

	for _, layer := range levelMap.Layers {
		if layer.Name != WallsLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				i := y*levelMap.Width + x
				if i >= len(layer.Tiles) || layer.Tiles[i].IsNil() {
					continue
				}
				px, py := x*levelMap.TileWidth, y*levelMap.TileHeight
				room.Walls = append(room.Walls, image.Rect(px, py, px+levelMap.TileWidth, py+levelMap.TileHeight))
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case WallsLayer:
			for _, o := range og.Objects {
				room.Walls = append(room.Walls, objectRect(o))
			}
		case WeaponsGroup:
			for _, o := range og.Objects {
				name := o.Properties.GetString("weapon")
				if name == "" {
					name = o.Name
				}
				if name == "" {
					return nil, fmt.Errorf("room %s: weapon object %d has no weapon property", room.Name, o.ID)
				}
				room.Weapons = append(room.Weapons, WeaponSpawn{Name: name, X: int(o.X), Y: int(o.Y)})
			}
		case EnemiesGroup:
			for _, o := range og.Objects {
				spawn := EnemySpawn{
					Name:     o.Name,
					Rect:     objectRect(o),
					HP:       o.Properties.GetInt("hp"),
					Bullet:   o.Properties.GetString("bullet"),
					Damage:   o.Properties.GetInt("damage"),
					Interval: o.Properties.GetInt("interval"),
				}
				if spawn.HP <= 0 {
					spawn.HP = 100
				}
				room.Enemies = append(room.Enemies, spawn)
			}
		case PlayerGroup:
			if len(og.Objects) > 0 {
				room.PlayerSpawn = image.Pt(int(og.Objects[0].X), int(og.Objects[0].Y))
			}
		}
	}

	return room, nil
}

// LoadRooms loads every .tmx file in dir, sorted by name.
func LoadRooms(fsys fs.FS, dir string) ([]*RoomLayout, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s: %w", dir, fs.ErrNotExist)
	}
	sort.Strings(matches)

	rooms := make([]*RoomLayout, 0, len(matches))
	for _, p := range matches {
		room, err := LoadRoom(fsys, p)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// LoadRoomsOrDefault loads the rooms in fsys, falling back to DefaultRooms
// when the filesystem has none.
func LoadRoomsOrDefault(fsys fs.FS) ([]*RoomLayout, error) {
	rooms, err := LoadRooms(fsys, RoomsDir)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultRooms(), nil
	}
	return rooms, err
}

// DefaultRooms builds a two-room arena: a weapon room and a room with
// shooting enemies.
func DefaultRooms() []*RoomLayout {
	armory := borderedRoom("armory")
	armory.Weapons = []WeaponSpawn{
		{Name: "katana", X: 320, Y: 400},
		{Name: "shotgun", X: 520, Y: 400},
		{Name: "revolver", X: 720, Y: 400},
		{Name: "armyknife", X: 920, Y: 400},
	}
	armory.Enemies = []EnemySpawn{
		{Name: "imp", Rect: image.Rect(600, 180, 648, 228), HP: 100, Bullet: "imp", Damage: 10, Interval: 90},
	}

	pit := borderedRoom("pit")
	pit.Walls = append(pit.Walls, image.Rect(640, 320, 704, 576))
	pit.Enemies = []EnemySpawn{
		{Name: "imp", Rect: image.Rect(300, 200, 348, 248), HP: 100, Bullet: "imp", Damage: 10, Interval: 75},
		{Name: "gunner", Rect: image.Rect(1000, 200, 1048, 248), HP: 150, Bullet: "machinegun", Interval: 20},
		{Name: "boss", Rect: image.Rect(1000, 600, 1096, 696), HP: 400, Bullet: "boss", Damage: 15, Interval: 60},
	}

	return []*RoomLayout{armory, pit}
}

func borderedRoom(name string) *RoomLayout {
	ts := cfg.World.TileSize
	w, h := cfg.World.RoomTilesW*ts, cfg.World.RoomTilesH*ts
	return &RoomLayout{
		Name:   name,
		Width:  w,
		Height: h,
		Walls: []image.Rectangle{
			image.Rect(0, 0, w, ts),
			image.Rect(0, h-ts, w, h),
			image.Rect(0, ts, ts, h-ts),
			image.Rect(w-ts, ts, w, h-ts),
		},
		PlayerSpawn: image.Pt(w/2, h/2),
	}
}

func objectRect(o *tiled.Object) image.Rectangle {
	x, y := int(math.Round(o.X)), int(math.Round(o.Y))
	return image.Rect(x, y, x+int(math.Round(o.Width)), y+int(math.Round(o.Height)))
}
