package factory

import (
	"github.com/solarlune/resolv"

	cfg "github.com/automoto/dungeonblades/config"
)

// newRoomSpace builds a collision space covering a w*h pixel room. The space
// is padded by one cell so objects on the right and bottom edges keep cells.
func newRoomSpace(w, h int) *resolv.Space {
	cell := cfg.World.CellSize
	return resolv.NewSpace(w+cell, h+cell, cell, cell)
}
