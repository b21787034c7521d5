package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useOverrideDir(t *testing.T, dir string) {
	t.Helper()
	prev := OverrideDir()
	SetOverrideDir(dir)
	t.Cleanup(func() { SetOverrideDir(prev) })
}

func TestEmbeddedCatalogs(t *testing.T) {
	useOverrideDir(t, "")

	bullets, err := LoadBullets()
	require.NoError(t, err)
	weapons, err := LoadWeapons(bullets)
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{"katana", "armyknife", "bow", "destroyercannon", "revolver", "shotgun"},
		weapons.Names())

	shotgun, err := weapons.Find("shotgun")
	require.NoError(t, err)
	assert.Equal(t, BehaviorSpread, shotgun.Behavior)
	assert.Equal(t, 3, shotgun.Pellets)
	assert.Equal(t, 15, shotgun.MuzzleDrop)
	assert.True(t, shotgun.OwnBullets)
	w, h := shotgun.SizeWH()
	assert.Equal(t, 30, w)
	assert.Equal(t, 96, h)

	revolver, err := weapons.Find("revolver")
	require.NoError(t, err)
	assert.Equal(t, 40, revolver.Damage)
	assert.True(t, revolver.Ranged())
	assert.False(t, revolver.OwnBullets)

	imp, err := bullets.Find("imp")
	require.NoError(t, err)
	assert.Equal(t, 5.0, imp.Speed)
	assert.Equal(t, ThreatPlayer, imp.Threat)
	assert.True(t, imp.BounceBack)

	sg, err := bullets.Find("shotgun")
	require.NoError(t, err)
	assert.Equal(t, 1400.0, sg.MaxX)
	assert.False(t, sg.BounceBack)
}

func TestFindUnknown(t *testing.T) {
	useOverrideDir(t, "")

	bullets, err := LoadBullets()
	require.NoError(t, err)
	_, err = bullets.Find("laser")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	useOverrideDir(t, dir)

	data := []byte("bullets:\n  - kind: pebble\n    speed: 2\n    size: 4\n    threat: both\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, BulletsFile), data, 0o644))

	bullets, err := LoadBullets()
	require.NoError(t, err)
	require.Len(t, bullets.Bullets, 1)
	assert.Equal(t, "pebble", bullets.Bullets[0].Kind)

	_, ok := ModTime(BulletsFile)
	assert.True(t, ok)
	_, ok = ModTime(WeaponsFile)
	assert.False(t, ok)
}

func TestWeaponValidation(t *testing.T) {
	dir := t.TempDir()
	useOverrideDir(t, dir)

	bullets := &BulletCatalog{Bullets: []BulletSpec{{Kind: "imp", Size: 7, Threat: ThreatPlayer}}}

	cases := map[string]string{
		"unknown behavior": "weapons:\n  - name: spoon\n    behavior: stir\n",
		"missing bullet":   "weapons:\n  - name: gun\n    behavior: single_shot\n    pellets: 1\n    bullet: rocket\n",
		"no pellets":       "weapons:\n  - name: gun\n    behavior: spread\n    bullet: imp\n",
		"bad size":         "weapons:\n  - name: axe\n    behavior: melee\n    size: [1, 2, 3]\n",
		"duplicate":        "weapons:\n  - name: axe\n    behavior: melee\n  - name: axe\n    behavior: melee\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, os.WriteFile(filepath.Join(dir, WeaponsFile), []byte(doc), 0o644))
			_, err := LoadWeapons(bullets)
			assert.Error(t, err)
		})
	}
}

func TestBrokenYAML(t *testing.T) {
	dir := t.TempDir()
	useOverrideDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, BulletsFile), []byte("bullets: [\n"), 0o644))

	_, err := LoadBullets()
	assert.Error(t, err)
}

func TestBulletColor(t *testing.T) {
	assert.Equal(t, uint8(255), BulletSpec{}.RGBA().R)
	c := BulletSpec{Color: []int{10, 20, 30}}.RGBA()
	assert.Equal(t, uint8(10), c.R)
	assert.Equal(t, uint8(20), c.G)
	assert.Equal(t, uint8(30), c.B)
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, WeaponsFile), []byte("weapons: []\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, WeaponsFile, name)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload event")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, ok := <-w.Events
	assert.False(t, ok)
}
