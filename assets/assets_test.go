package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		img.Set(w/2, y, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestWeaponImagePath(t *testing.T) {
	assert.Equal(t, "objects/weapon/katana/katana.png", WeaponImagePath("katana"))
}

func TestLoadWeaponImage(t *testing.T) {
	fsys := fstest.MapFS{
		"objects/weapon/katana/katana.png": {Data: pngBytes(t, 12, 30)},
	}
	l := NewImageLoader(fsys)

	t.Run("explicit size", func(t *testing.T) {
		img, err := l.LoadWeaponImage("katana", 36, 90)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 36, 90), img.Bounds())
	})

	t.Run("scaled by weapon scale", func(t *testing.T) {
		img, err := l.LoadWeaponImage("katana", 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 36, img.Bounds().Dx())
		assert.Equal(t, 90, img.Bounds().Dy())
	})

	t.Run("unknown weapon", func(t *testing.T) {
		_, err := l.LoadWeaponImage("spoon", 0, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownWeapon))
	})

	t.Run("must panics", func(t *testing.T) {
		assert.Panics(t, func() { l.MustLoadWeaponImage("spoon", 0, 0) })
	})
}

func TestLoadImageCorrupt(t *testing.T) {
	fsys := fstest.MapFS{
		"objects/weapon/bad/bad.png": {Data: []byte("not a png")},
	}
	_, err := NewImageLoader(fsys).LoadImage(WeaponImagePath("bad"))
	assert.Error(t, err)
}

func TestCheckWeapons(t *testing.T) {
	fsys := fstest.MapFS{
		"objects/weapon/katana/katana.png": {Data: pngBytes(t, 12, 30)},
	}
	l := NewImageLoader(fsys)

	assert.NoError(t, l.CheckWeapons([]string{"katana"}))

	err := l.CheckWeapons([]string{"katana", "bow", "spoon"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownWeapon)
	assert.Contains(t, err.Error(), "bow")
	assert.Contains(t, err.Error(), "spoon")
}

func TestEmbeddedWeaponsExist(t *testing.T) {
	l := NewImageLoader(Embedded())
	names := []string{"katana", "armyknife", "bow", "destroyercannon", "revolver", "shotgun"}
	assert.NoError(t, l.CheckWeapons(names))
}

func TestLoadWeaponFrames(t *testing.T) {
	fsys := fstest.MapFS{
		"objects/weapon/shotgun/shotgun.png":   {Data: pngBytes(t, 10, 32)},
		"objects/weapon/shotgun/shotgun_2.png": {Data: pngBytes(t, 5, 16)},
	}
	l := NewImageLoader(fsys)

	frames, err := l.LoadWeaponFrames("shotgun", 4, 30, 96)
	require.NoError(t, err)
	require.Len(t, frames, 4)
	for _, f := range frames {
		assert.Equal(t, image.Rect(0, 0, 30, 96), f.Bounds())
	}
	assert.Same(t, frames[0], frames[1], "missing frame falls back to the base sprite")
	assert.NotSame(t, frames[0], frames[2])

	single, err := l.LoadWeaponFrames("shotgun", 0, 30, 96)
	require.NoError(t, err)
	assert.Len(t, single, 1)

	assert.Panics(t, func() { l.MustLoadWeaponFrames("spoon", 4, 0, 0) })
}
