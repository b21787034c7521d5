package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml
var PrefabsFS embed.FS

var overrideDir = "prefabs"

// SetOverrideDir changes the directory searched before the embedded copies.
// An empty dir disables disk overrides.
func SetOverrideDir(dir string) {
	overrideDir = dir
}

// OverrideDir returns the directory searched before the embedded copies.
func OverrideDir() string {
	return overrideDir
}

func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if overrideDir != "" {
		if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
			return data, nil
		}
	}
	return PrefabsFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	if overrideDir == "" {
		return time.Time{}, false
	}
	info, err := os.Stat(diskPrefabPath(cleanPrefabPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(overrideDir, filepath.FromSlash(clean))
}
