package gamemath

import "image"

// Mask is a pixel-accurate collision mask. Bit (x, y) is set when the source
// pixel is opaque.
type Mask struct {
	W, H int
	bits []uint64
}

func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{W: w, H: h, bits: make([]uint64, (w*h+63)/64)}
}

// SolidMask returns a fully set w*h mask.
func SolidMask(w, h int) *Mask {
	m := NewMask(w, h)
	for i := range m.bits {
		m.bits[i] = ^uint64(0)
	}
	if tail := (w * h) % 64; tail != 0 {
		m.bits[len(m.bits)-1] = (1 << tail) - 1
	}
	return m
}

// MaskFromImage sets every pixel whose alpha is above threshold (0-255).
func MaskFromImage(img image.Image, threshold uint8) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	limit := uint32(threshold)
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 > limit {
				m.Set(x, y)
			}
		}
	}
	return m
}

func (m *Mask) Set(x, y int) {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return
	}
	i := y*m.W + x
	m.bits[i/64] |= 1 << (i % 64)
}

func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	i := y*m.W + x
	return m.bits[i/64]&(1<<(i%64)) != 0
}

// Count returns the number of set bits.
func (m *Mask) Count() int {
	n := 0
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if m.Get(x, y) {
				n++
			}
		}
	}
	return n
}

// Overlaps reports whether any set bit of m coincides with a set bit of other
// when other's origin sits at (dx, dy) in m's coordinates.
func (m *Mask) Overlaps(other *Mask, dx, dy int) bool {
	if m == nil || other == nil {
		return false
	}
	x0, y0 := max(0, dx), max(0, dy)
	x1, y1 := min(m.W, dx+other.W), min(m.H, dy+other.H)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.Get(x, y) && other.Get(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}

// BoundingRect returns the smallest rectangle holding every set bit, in mask
// coordinates. An empty mask yields an empty rectangle.
func (m *Mask) BoundingRect() image.Rectangle {
	minX, minY, maxX, maxY := m.W, m.H, -1, -1
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if !m.Get(x, y) {
				continue
			}
			minX, minY = min(minX, x), min(minY, y)
			maxX, maxY = max(maxX, x), max(maxY, y)
		}
	}
	if maxX < 0 {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// MasksCollide tests two masks placed at world-space rectangles a and b.
// Only pixels inside both rectangles count.
func MasksCollide(ma *Mask, a image.Rectangle, mb *Mask, b image.Rectangle) bool {
	if ma == nil || mb == nil {
		return false
	}
	area := a.Intersect(b)
	if area.Empty() {
		return false
	}
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if ma.Get(x-a.Min.X, y-a.Min.Y) && mb.Get(x-b.Min.X, y-b.Min.Y) {
				return true
			}
		}
	}
	return false
}
