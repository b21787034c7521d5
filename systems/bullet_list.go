package systems

import (
	"log"

	"github.com/automoto/dungeonblades/components"
	cfg "github.com/automoto/dungeonblades/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AddBullet appends bullet to collection. When the collection holds more
// live bullets than the configured cap, the oldest live one expires.
func AddBullet(ecs *ecs.ECS, collection, bullet *donburi.Entry) {
	list := components.BulletList.Get(collection)
	list.Bullets = append(list.Bullets, bullet)
	components.Bullet.Get(bullet).Collection = collection

	if cfg.Bullets.MaxPerCollection <= 0 {
		return
	}
	live := 0
	for _, b := range list.Bullets {
		if isLive(b) {
			live++
		}
	}
	for _, b := range list.Bullets {
		if live <= cfg.Bullets.MaxPerCollection {
			break
		}
		if isLive(b) {
			expireBullet(b)
			live--
		}
	}
}

// RemoveStaleBullets drops bullets fired in a room other than the active
// one, along with any already dead. It returns how many were dropped.
func RemoveStaleBullets(ecs *ecs.ECS, collection *donburi.Entry) int {
	list := components.BulletList.Get(collection)
	room := ActiveRoom(ecs)

	for _, b := range list.Bullets {
		if isLive(b) && components.Bullet.Get(b).Room != room {
			expireBullet(b)
		}
	}

	before := len(list.Bullets)
	compactBullets(list)
	removed := before - len(list.Bullets)
	if removed > 0 && cfg.Debug.LogBullets {
		log.Printf("pruned %d bullets", removed)
	}
	return removed
}

// UpdateBulletList prunes the collection, updates every survivor once and
// compacts away the bullets killed during the pass.
func UpdateBulletList(ecs *ecs.ECS, collection *donburi.Entry) {
	RemoveStaleBullets(ecs, collection)

	list := components.BulletList.Get(collection)
	n := len(list.Bullets)
	for i := 0; i < n; i++ {
		UpdateBullet(ecs, list.Bullets[i])
	}

	compactBullets(components.BulletList.Get(collection))
}

// UpdateBulletLists updates the shared bullet manager and every weapon that
// tracks its own bullets.
func UpdateBulletLists(ecs *ecs.ECS) {
	var collections []*donburi.Entry
	components.BulletList.Each(ecs.World, func(e *donburi.Entry) {
		collections = append(collections, e)
	})
	for _, c := range collections {
		UpdateBulletList(ecs, c)
	}
}

// LiveBullets returns the bullets in collection that have not been killed.
func LiveBullets(collection *donburi.Entry) []*donburi.Entry {
	list := components.BulletList.Get(collection)
	live := make([]*donburi.Entry, 0, len(list.Bullets))
	for _, b := range list.Bullets {
		if isLive(b) {
			live = append(live, b)
		}
	}
	return live
}

func isLive(bullet *donburi.Entry) bool {
	return bullet != nil && bullet.Valid() && !components.Bullet.Get(bullet).Dead
}

// compactBullets removes dead and stale entries in place, keeping order,
// and destroys the dead bullet entities.
func compactBullets(list *components.BulletListData) {
	kept := 0
	for _, b := range list.Bullets {
		if b == nil || !b.Valid() {
			continue
		}
		if components.Bullet.Get(b).Dead {
			b.Remove()
			continue
		}
		list.Bullets[kept] = b
		kept++
	}
	clear(list.Bullets[kept:])
	list.Bullets = list.Bullets[:kept]
}
