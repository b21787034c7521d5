package components

import (
	"image"
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's bounds as an integer rectangle.
func (o *ObjectData) Rect() image.Rectangle {
	x, y := int(math.Floor(o.X)), int(math.Floor(o.Y))
	return image.Rect(x, y, x+int(o.W), y+int(o.H))
}

// SetRect moves and resizes the object to r and refreshes its space cells.
func (o *ObjectData) SetRect(r image.Rectangle) {
	o.X, o.Y = float64(r.Min.X), float64(r.Min.Y)
	o.W, o.H = float64(r.Dx()), float64(r.Dy())
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
