package assets

import (
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"

	cfg "github.com/automoto/dungeonblades/config"
	"github.com/automoto/dungeonblades/shared/gamemath"
)

//go:embed all:objects all:audio all:rooms
var embeddedFS embed.FS

// ErrUnknownWeapon is returned when a weapon name has no sprite.
var ErrUnknownWeapon = errors.New("assets: unknown weapon")

// Embedded returns the asset tree compiled into the binary.
func Embedded() fs.FS {
	return embeddedFS
}

// WeaponImagePath returns the sprite path for a weapon name. Every weapon
// has its own folder holding a single image named after it.
func WeaponImagePath(name string) string {
	return path.Join("objects", "weapon", name, name+".png")
}

// ImageLoader decodes and caches sprites from an asset filesystem.
type ImageLoader struct {
	fsys  fs.FS
	cache map[string]image.Image
}

func NewImageLoader(fsys fs.FS) *ImageLoader {
	return &ImageLoader{
		fsys:  fsys,
		cache: make(map[string]image.Image),
	}
}

// LoadImage decodes the image at p.
func (l *ImageLoader) LoadImage(p string) (image.Image, error) {
	if img, ok := l.cache[p]; ok {
		return img, nil
	}

	f, err := l.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", p, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}

	l.cache[p] = img
	return img, nil
}

// LoadWeaponImage returns the weapon sprite at world scale: resized to w*h
// when both are set, otherwise scaled by the configured weapon scale.
func (l *ImageLoader) LoadWeaponImage(name string, w, h int) (image.Image, error) {
	src, err := l.LoadImage(WeaponImagePath(name))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrUnknownWeapon, name, err)
	}

	if w <= 0 || h <= 0 {
		w = src.Bounds().Dx() * cfg.Combat.WeaponScale
		h = src.Bounds().Dy() * cfg.Combat.WeaponScale
	}
	return gamemath.Scale(src, w, h), nil
}

// MustLoadWeaponImage is LoadWeaponImage that panics on a missing sprite.
func (l *ImageLoader) MustLoadWeaponImage(name string, w, h int) image.Image {
	img, err := l.LoadWeaponImage(name, w, h)
	if err != nil {
		panic(err)
	}
	return img
}

// LoadWeaponFrames returns n animation frames for a weapon. Frame i > 0 is
// read from <name>_<i>.png beside the base sprite and falls back to the
// base sprite when that file is absent.
func (l *ImageLoader) LoadWeaponFrames(name string, n, w, h int) ([]image.Image, error) {
	base, err := l.LoadWeaponImage(name, w, h)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		n = 1
	}

	frames := make([]image.Image, n)
	frames[0] = base
	dir := path.Dir(WeaponImagePath(name))
	for i := 1; i < n; i++ {
		src, err := l.LoadImage(path.Join(dir, fmt.Sprintf("%s_%d.png", name, i)))
		if err != nil {
			frames[i] = base
			continue
		}
		frames[i] = gamemath.Scale(src, base.Bounds().Dx(), base.Bounds().Dy())
	}
	return frames, nil
}

// MustLoadWeaponFrames is LoadWeaponFrames that panics on a missing sprite.
func (l *ImageLoader) MustLoadWeaponFrames(name string, n, w, h int) []image.Image {
	frames, err := l.LoadWeaponFrames(name, n, w, h)
	if err != nil {
		panic(err)
	}
	return frames
}

// CheckWeapons verifies every named weapon has a sprite.
func (l *ImageLoader) CheckWeapons(names []string) error {
	var errs []error
	for _, name := range names {
		if _, err := l.LoadImage(WeaponImagePath(name)); err != nil {
			errs = append(errs, fmt.Errorf("%w %q: %w", ErrUnknownWeapon, name, err))
		}
	}
	return errors.Join(errs...)
}
