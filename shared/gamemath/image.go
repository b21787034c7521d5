package gamemath

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// Rotate returns src rotated counter-clockwise by angleDeg on a canvas grown
// to the rotated bounding box, centered.
func Rotate(src image.Image, angleDeg float64) image.Image {
	w, h := float64(src.Bounds().Dx()), float64(src.Bounds().Dy())
	rad := Radians(angleDeg)
	sin, cos := math.Abs(math.Sin(rad)), math.Abs(math.Cos(rad))
	nw := int(math.Ceil(w*cos + h*sin - 1e-9))
	nh := int(math.Ceil(w*sin + h*cos - 1e-9))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dc := gg.NewContext(nw, nh)
	dc.RotateAbout(-rad, float64(nw)/2, float64(nh)/2)
	dc.DrawImageAnchored(src, nw/2, nh/2, 0.5, 0.5)
	return dc.Image()
}

// FlipHorizontal mirrors src around its vertical axis.
func FlipHorizontal(src image.Image) image.Image {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	dc := gg.NewContext(w, h)
	dc.ScaleAbout(-1, 1, float64(w)/2, 0)
	dc.DrawImage(src, 0, 0)
	return dc.Image()
}

// Scale resizes src to w*h with nearest-neighbour sampling so pixel art
// keeps hard edges.
func Scale(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
