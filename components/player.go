package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Attacking bool    // set by input, cleared when a swing or shot resolves
	Strength  float64 // melee and ranged damage multiplier
	Hurt      bool
	HurtTick  int
	Shield    int // charges; each absorbs one bullet hit

	Items  []*donburi.Entry // weapons in pickup order
	Weapon *donburi.Entry   // active weapon, nil when unarmed
}

// HasItem reports whether weapon is in the player's inventory.
func (p *PlayerData) HasItem(weapon *donburi.Entry) bool {
	for _, it := range p.Items {
		if it == weapon {
			return true
		}
	}
	return false
}

// RemoveItem deletes weapon from the inventory, keeping order.
func (p *PlayerData) RemoveItem(weapon *donburi.Entry) bool {
	for i, it := range p.Items {
		if it == weapon {
			p.Items = append(p.Items[:i], p.Items[i+1:]...)
			return true
		}
	}
	return false
}

var Player = donburi.NewComponentType[PlayerData]()
