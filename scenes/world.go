package scenes

import (
	"fmt"
	"image/color"
	"io/fs"
	"sync"

	"github.com/automoto/dungeonblades/assets"
	"github.com/automoto/dungeonblades/components"
	cfg "github.com/automoto/dungeonblades/config"
	"github.com/automoto/dungeonblades/prefabs"
	"github.com/automoto/dungeonblades/systems"
	"github.com/automoto/dungeonblades/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options selects the content a combat scene is built from.
type Options struct {
	Assets    fs.FS  // sprites, sounds and room maps; embedded copies when nil
	StartRoom string // room name to start in; first room when empty
	Watcher   *prefabs.Watcher
}

// CombatScene runs the rooms, the player and every weapon and bullet.
type CombatScene struct {
	ecs     *ecs.ECS
	watcher *prefabs.Watcher
	once    sync.Once
}

// NewCombatScene loads the arsenal and rooms and spawns the player. A
// missing weapon sprite or an unreadable room map is an error.
func NewCombatScene(opts Options) (*CombatScene, error) {
	world, err := NewCombatWorld(opts)
	if err != nil {
		return nil, err
	}
	return &CombatScene{ecs: world, watcher: opts.Watcher}, nil
}

func (cs *CombatScene) Update() {
	cs.once.Do(systems.PreloadAllSFX)
	systems.DrainPrefabEvents(cs.ecs, cs.watcher)
	cs.ecs.Update()
}

func (cs *CombatScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	cs.ecs.Draw(screen)
}

// ECS exposes the scene's world.
func (cs *CombatScene) ECS() *ecs.ECS {
	return cs.ecs
}

// NewCombatWorld builds the entity world with its systems and renderers.
// It needs no window or audio device.
func NewCombatWorld(opts Options) (*ecs.ECS, error) {
	fsys := opts.Assets
	if fsys == nil {
		fsys = assets.Embedded()
	}

	bullets, err := prefabs.LoadBullets()
	if err != nil {
		return nil, err
	}
	weapons, err := prefabs.LoadWeapons(bullets)
	if err != nil {
		return nil, err
	}

	images := assets.NewImageLoader(fsys)
	if err := images.CheckWeapons(weapons.Names()); err != nil {
		return nil, err
	}

	layouts, err := assets.LoadRoomsOrDefault(fsys)
	if err != nil {
		return nil, err
	}

	start := 0
	if opts.StartRoom != "" {
		start = -1
		for i, l := range layouts {
			if l.Name == opts.StartRoom {
				start = i
				break
			}
		}
		if start < 0 {
			return nil, fmt.Errorf("start room %q: %w", opts.StartRoom, fs.ErrNotExist)
		}
	}

	ecs := ecs.NewECS(donburi.NewWorld())
	addSystems(ecs)

	arsenal := components.ArsenalData{Weapons: weapons, Bullets: bullets}
	factory.CreateArsenal(ecs, arsenal)

	rooms := make([]*donburi.Entry, len(layouts))
	for i, layout := range layouts {
		rooms[i] = factory.PopulateRoom(ecs, layout, i, images, &arsenal)
	}

	factory.CreateWorld(ecs, rooms[start])
	factory.CreateBulletManager(ecs)

	spawn := layouts[start].PlayerSpawn
	factory.CreatePlayer(ecs, rooms[start], float64(spawn.X), float64(spawn.Y))

	return ecs, nil
}

func addSystems(ecs *ecs.ECS) {
	// Clock and effect drains run first so this frame's stamps are fresh
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateClock))
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateParticles))

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateRooms))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateWeapons))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateShooters))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateBulletLists))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateDeaths))

	ecs.AddRenderer(cfg.Default, systems.DrawRoom)
	ecs.AddRenderer(cfg.Default, systems.DrawEntities)
	ecs.AddRenderer(cfg.Default, systems.DrawWeapons)
	ecs.AddRenderer(cfg.Default, systems.DrawBullets)
	ecs.AddRenderer(cfg.Default, systems.DrawParticles)
	ecs.AddRenderer(cfg.Default, systems.DrawPrompts)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)
}
