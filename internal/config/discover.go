package config

import (
	"os"
	"path/filepath"
)

// FileName is the optional project-level configuration file.
const FileName = "release.yaml"

// rootMarkers identify the swc4j project root, checked in order.
var rootMarkers = []string{
	FileName,
	filepath.Join("rust", "Cargo.toml"),
}

// DiscoverRoot walks up from start to the first directory containing a
// root marker. When none is found it returns the absolute start directory
// and false.
func DiscoverRoot(start string) (string, bool, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", false, err
	}

	dir := abs
	for {
		for _, marker := range rootMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, true, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, false, nil
		}
		dir = parent
	}
}

// PathIn returns the config file path inside root, or path itself when it
// is absolute.
func PathIn(root, path string) string {
	if path == "" {
		path = FileName
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
