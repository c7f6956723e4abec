package config

import "github.com/caoccao/swc4j/internal/target"

// Config represents the release.yaml configuration file.
type Config struct {
	Version int `yaml:"version"`

	// Release is the version published artifacts and release files carry.
	Release string `yaml:"release,omitempty"`

	// Prerelease is the version snapshot references carry.
	Prerelease string `yaml:"prerelease,omitempty"`

	// BuildDir is the cargo output tree, relative to the project root.
	BuildDir string `yaml:"build_dir,omitempty"`

	// ResourceDir receives published libraries, relative to the project root.
	ResourceDir string `yaml:"resource_dir,omitempty"`
}

const (
	// DefaultRelease is the swc4j version this tool ships with.
	DefaultRelease = "1.6.0"

	// DefaultPrerelease is the snapshot version referenced by the docs.
	DefaultPrerelease = "1.6.0"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version:     1,
		Release:     DefaultRelease,
		Prerelease:  DefaultPrerelease,
		BuildDir:    target.DefaultBuildDir,
		ResourceDir: target.DefaultResourceDir,
	}
}
