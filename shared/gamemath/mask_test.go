package gamemath

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bar returns a w*h transparent image with an opaque vertical bar at column x.
func bar(w, h, x int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		img.Set(x, y, color.NRGBA{R: 200, A: 255})
	}
	return img
}

func TestSolidMask(t *testing.T) {
	m := SolidMask(7, 7)
	assert.Equal(t, 49, m.Count())
	assert.True(t, m.Get(6, 6))
	assert.False(t, m.Get(7, 0))
	assert.False(t, m.Get(-1, 0))
}

func TestMaskFromImage(t *testing.T) {
	img := bar(5, 4, 2)
	img.Set(0, 0, color.NRGBA{A: 100}) // below threshold

	m := MaskFromImage(img, 127)
	assert.Equal(t, 4, m.Count())
	assert.True(t, m.Get(2, 3))
	assert.False(t, m.Get(0, 0))
	assert.Equal(t, image.Rect(2, 0, 3, 4), m.BoundingRect())
}

func TestMaskOverlaps(t *testing.T) {
	a := MaskFromImage(bar(5, 5, 4), 127)
	b := MaskFromImage(bar(5, 5, 0), 127)

	assert.True(t, a.Overlaps(b, 4, 0), "bars line up")
	assert.False(t, a.Overlaps(b, 3, 0), "bars side by side")
	assert.False(t, a.Overlaps(b, 5, 0), "no intersection")
	assert.True(t, a.Overlaps(b, 4, -4))
	assert.False(t, a.Overlaps(nil, 0, 0))
}

func TestMasksCollide(t *testing.T) {
	solid := SolidMask(10, 10)
	hollow := NewMask(10, 10)
	hollow.Set(9, 9)

	assert.True(t, MasksCollide(solid, image.Rect(0, 0, 10, 10), solid, image.Rect(9, 9, 19, 19)))
	assert.False(t, MasksCollide(solid, image.Rect(0, 0, 10, 10), solid, image.Rect(10, 0, 20, 10)))
	assert.False(t, MasksCollide(hollow, image.Rect(0, 0, 10, 10), solid, image.Rect(0, 0, 9, 9)))
	assert.True(t, MasksCollide(hollow, image.Rect(0, 0, 10, 10), solid, image.Rect(5, 5, 15, 15)))
	assert.False(t, MasksCollide(solid, image.Rect(0, 0, 9, 9), hollow, image.Rect(0, 0, 9, 9)), "bit outside b")
	assert.False(t, MasksCollide(nil, image.Rect(0, 0, 10, 10), solid, image.Rect(0, 0, 10, 10)))
}

func TestEmptyMaskBounds(t *testing.T) {
	assert.True(t, NewMask(4, 4).BoundingRect().Empty())
}

func TestRotateGrowsCanvas(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 10; x++ {
			src.Set(x, y, color.NRGBA{G: 255, A: 255})
		}
	}

	same := Rotate(src, 0)
	assert.Equal(t, 10, same.Bounds().Dx())
	assert.Equal(t, 30, same.Bounds().Dy())

	quarter := Rotate(src, 90)
	assert.Equal(t, 30, quarter.Bounds().Dx())
	assert.Equal(t, 10, quarter.Bounds().Dy())

	diag := Rotate(src, 45)
	assert.Greater(t, diag.Bounds().Dx(), 10)
	assert.Greater(t, diag.Bounds().Dy(), 10)

	m := MaskFromImage(quarter, 127)
	assert.Greater(t, m.Count(), 250)
}

func TestFlipHorizontal(t *testing.T) {
	flipped := FlipHorizontal(bar(6, 3, 1))
	m := MaskFromImage(flipped, 127)
	require.Equal(t, 3, m.Count())
	assert.True(t, m.Get(4, 0))
	assert.True(t, m.Get(4, 2))
}

func TestScale(t *testing.T) {
	scaled := Scale(bar(4, 4, 0), 12, 12)
	m := MaskFromImage(scaled, 127)
	assert.Equal(t, image.Rect(0, 0, 3, 12), m.BoundingRect())
}
