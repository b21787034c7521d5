package prefabs

import (
	"errors"
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"
)

const (
	WeaponsFile = "weapons.yaml"
	BulletsFile = "bullets.yaml"
)

// Weapon behaviors
const (
	BehaviorMelee      = "melee"
	BehaviorSpread     = "spread"
	BehaviorSingleShot = "single_shot"
)

// Bullet threat sets
const (
	ThreatPlayer  = "player"
	ThreatEnemies = "enemies"
	ThreatBoth    = "both"
)

var ErrUnknownKind = errors.New("prefabs: unknown kind")

type WeaponSpec struct {
	Name       string  `yaml:"name"`
	Behavior   string  `yaml:"behavior"`
	Damage     int     `yaml:"damage"`
	Size       []int   `yaml:"size"`
	Value      int     `yaml:"value"`
	SwingSound bool    `yaml:"swing_sound"`
	Special    string  `yaml:"special"`
	Bullet     string  `yaml:"bullet"`
	Pellets    int     `yaml:"pellets"`
	Spread     float64 `yaml:"spread"`
	MuzzleDrop int     `yaml:"muzzle_drop"`
	OwnBullets bool    `yaml:"own_bullets"`
	Frames     int     `yaml:"frames"`
	FrameStep  float64 `yaml:"frame_step"`
}

// SizeWH returns the sprite size in pixels, or 0,0 when unset.
func (s WeaponSpec) SizeWH() (int, int) {
	if len(s.Size) != 2 {
		return 0, 0
	}
	return s.Size[0], s.Size[1]
}

func (s WeaponSpec) Ranged() bool {
	return s.Behavior == BehaviorSpread || s.Behavior == BehaviorSingleShot
}

type BulletSpec struct {
	Kind             string    `yaml:"kind"`
	Speed            float64   `yaml:"speed"`
	Size             int       `yaml:"size"`
	Radius           int       `yaml:"radius"`
	Threat           string    `yaml:"threat"`
	BounceBack       bool      `yaml:"bounce_back"`
	Damage           int       `yaml:"damage"`
	DamageFromMaster bool      `yaml:"damage_from_master"`
	ScaleByStrength  bool      `yaml:"scale_by_strength"`
	MaxX             float64   `yaml:"max_x"`
	WallFirst        bool      `yaml:"wall_first"`
	Spin             float64   `yaml:"spin"`
	SilentKill       bool      `yaml:"silent_kill"`
	MovesOffRoom     bool      `yaml:"moves_off_room"`
	Fan              []float64 `yaml:"fan"` // one bullet per rotation (degrees); empty fires one straight bullet
	Color            []int     `yaml:"color"`
}

// RGBA returns the bullet fill color, white when unset.
func (s BulletSpec) RGBA() color.RGBA {
	if len(s.Color) < 3 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{R: uint8(s.Color[0]), G: uint8(s.Color[1]), B: uint8(s.Color[2]), A: 255}
}

type WeaponCatalog struct {
	Weapons []WeaponSpec `yaml:"weapons"`
}

func (c *WeaponCatalog) Find(name string) (WeaponSpec, error) {
	for _, w := range c.Weapons {
		if w.Name == name {
			return w, nil
		}
	}
	return WeaponSpec{}, fmt.Errorf("weapon %q: %w", name, ErrUnknownKind)
}

func (c *WeaponCatalog) Names() []string {
	names := make([]string, 0, len(c.Weapons))
	for _, w := range c.Weapons {
		names = append(names, w.Name)
	}
	return names
}

type BulletCatalog struct {
	Bullets []BulletSpec `yaml:"bullets"`
}

func (c *BulletCatalog) Find(kind string) (BulletSpec, error) {
	for _, b := range c.Bullets {
		if b.Kind == kind {
			return b, nil
		}
	}
	return BulletSpec{}, fmt.Errorf("bullet %q: %w", kind, ErrUnknownKind)
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadBullets reads and validates bullets.yaml.
func LoadBullets() (*BulletCatalog, error) {
	catalog, err := LoadSpec[BulletCatalog](BulletsFile)
	if err != nil {
		return nil, err
	}
	if err := catalog.validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", BulletsFile, err)
	}
	return &catalog, nil
}

// LoadWeapons reads weapons.yaml and checks every bullet reference against bullets.
func LoadWeapons(bullets *BulletCatalog) (*WeaponCatalog, error) {
	catalog, err := LoadSpec[WeaponCatalog](WeaponsFile)
	if err != nil {
		return nil, err
	}
	if err := catalog.validate(bullets); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", WeaponsFile, err)
	}
	return &catalog, nil
}

func (c *BulletCatalog) validate() error {
	seen := make(map[string]bool, len(c.Bullets))
	for _, b := range c.Bullets {
		if b.Kind == "" {
			return errors.New("bullet without kind")
		}
		if seen[b.Kind] {
			return fmt.Errorf("duplicate bullet %q", b.Kind)
		}
		seen[b.Kind] = true
		switch b.Threat {
		case ThreatPlayer, ThreatEnemies, ThreatBoth:
		default:
			return fmt.Errorf("bullet %q: threat %q: %w", b.Kind, b.Threat, ErrUnknownKind)
		}
		if b.Size <= 0 {
			return fmt.Errorf("bullet %q: size must be positive", b.Kind)
		}
	}
	return nil
}

func (c *WeaponCatalog) validate(bullets *BulletCatalog) error {
	seen := make(map[string]bool, len(c.Weapons))
	for _, w := range c.Weapons {
		if w.Name == "" {
			return errors.New("weapon without name")
		}
		if seen[w.Name] {
			return fmt.Errorf("duplicate weapon %q", w.Name)
		}
		seen[w.Name] = true
		if len(w.Size) != 0 && len(w.Size) != 2 {
			return fmt.Errorf("weapon %q: size needs two values", w.Name)
		}
		switch w.Behavior {
		case BehaviorMelee:
		case BehaviorSpread, BehaviorSingleShot:
			if w.Pellets < 1 {
				return fmt.Errorf("weapon %q: pellets must be at least 1", w.Name)
			}
			if bullets == nil {
				return fmt.Errorf("weapon %q: no bullet catalog", w.Name)
			}
			if _, err := bullets.Find(w.Bullet); err != nil {
				return fmt.Errorf("weapon %q: %w", w.Name, err)
			}
		default:
			return fmt.Errorf("weapon %q: behavior %q: %w", w.Name, w.Behavior, ErrUnknownKind)
		}
	}
	return nil
}
