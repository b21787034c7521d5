package components

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData pairs a logical image with its GPU copy. Game logic only
// touches Source; the GPU image is created on first draw.
type SpriteData struct {
	Source   image.Image
	Image    *ebiten.Image
	Rotation float64
	PivotX   float64
	PivotY   float64
}

// SetSource replaces the logical image and drops the stale GPU copy.
func (s *SpriteData) SetSource(img image.Image) {
	s.Source = img
	s.Image = nil
	if img != nil {
		s.PivotX = float64(img.Bounds().Dx()) / 2
		s.PivotY = float64(img.Bounds().Dy()) / 2
	}
}

// EbitenImage returns the GPU copy of Source, uploading it if needed.
func (s *SpriteData) EbitenImage() *ebiten.Image {
	if s.Image == nil && s.Source != nil {
		s.Image = ebiten.NewImageFromImage(s.Source)
	}
	return s.Image
}

var Sprite = donburi.NewComponentType[SpriteData]()
