package systems

import (
	"fmt"
	"log"

	"github.com/automoto/dungeonblades/components"
	"github.com/automoto/dungeonblades/prefabs"
	"github.com/automoto/dungeonblades/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ReloadPrefabs re-reads the weapon and bullet definitions and applies them
// to the arsenal and to every live weapon. Sprites are not reloaded. On
// error nothing is changed.
func ReloadPrefabs(ecs *ecs.ECS) error {
	bullets, err := prefabs.LoadBullets()
	if err != nil {
		return err
	}
	weapons, err := prefabs.LoadWeapons(bullets)
	if err != nil {
		return err
	}

	arsenalEntry, ok := components.Arsenal.First(ecs.World)
	if !ok {
		return fmt.Errorf("reload prefabs: no arsenal")
	}
	arsenal := components.Arsenal.Get(arsenalEntry)
	arsenal.Weapons = weapons
	arsenal.Bullets = bullets

	tags.Weapon.Each(ecs.World, func(weapon *donburi.Entry) {
		w := components.Weapon.Get(weapon)
		spec, err := weapons.Find(w.Name)
		if err != nil {
			log.Printf("reload prefabs: keeping old stats: %v", err)
			return
		}
		w.Spec = spec
		if spec.Ranged() {
			w.Bullet, _ = bullets.Find(spec.Bullet)
		}
	})
	return nil
}

// DrainPrefabEvents reloads the definitions once if the watcher reported any
// change since the last call. It never blocks.
func DrainPrefabEvents(ecs *ecs.ECS, watcher *prefabs.Watcher) {
	if watcher == nil {
		return
	}

	changed := false
drain:
	for {
		select {
		case name, ok := <-watcher.Events:
			if !ok {
				break drain
			}
			changed = true
			log.Printf("prefab %s changed", name)
		case err, ok := <-watcher.Errors:
			if !ok {
				break drain
			}
			log.Printf("prefab watcher: %v", err)
		default:
			break drain
		}
	}

	if !changed {
		return
	}
	if err := ReloadPrefabs(ecs); err != nil {
		log.Printf("reload prefabs: %v", err)
	}
}
