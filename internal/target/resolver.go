package target

import (
	"fmt"
	"path/filepath"
)

const (
	// DefaultBuildDir is the cargo output tree, relative to the project root.
	DefaultBuildDir = "rust/target"

	// DefaultResourceDir is where published libraries are placed, relative to the project root.
	DefaultResourceDir = "src/main/resources"
)

// Resolver maps an (os, arch, mode) request to source and destination paths.
// It performs no filesystem access.
type Resolver struct {
	Matrix      *Matrix
	Root        string
	BuildDir    string // relative to Root; DefaultBuildDir when empty
	ResourceDir string // relative to Root; DefaultResourceDir when empty
}

// NewResolver creates a Resolver over the built-in matrix.
func NewResolver(root string) *Resolver {
	return &Resolver{Matrix: NewMatrix(), Root: root}
}

// Resolution is the outcome of resolving one target.
type Resolution struct {
	Platform   Platform
	Convention Convention

	// SearchPaths are candidate directories in probe order: the
	// triple-specific output first, then the generic output.
	SearchPaths    []string
	SourceFileName string

	DestinationDir      string
	DestinationFileName string
}

// DestinationPath is the absolute destination file path.
func (r *Resolution) DestinationPath() string {
	return filepath.Join(r.DestinationDir, r.DestinationFileName)
}

// Resolve computes the search paths and versioned destination name for a target.
func (r *Resolver) Resolve(osName, archName string, debug bool, version string) (*Resolution, error) {
	m := r.Matrix
	if m == nil {
		m = NewMatrix()
	}
	p, e, err := m.Platform(osName, archName)
	if err != nil {
		return nil, err
	}

	buildDir := filepath.Join(r.Root, orDefault(r.BuildDir, DefaultBuildDir))
	mode := BuildMode(debug)

	return &Resolution{
		Platform:   p,
		Convention: e.Convention,
		SearchPaths: []string{
			filepath.Join(buildDir, p.Triple, mode),
			filepath.Join(buildDir, mode),
		},
		SourceFileName:      e.Convention.SourceFileName(),
		DestinationDir:      filepath.Join(r.Root, orDefault(r.ResourceDir, DefaultResourceDir)),
		DestinationFileName: ArtifactName(e.Convention, p, version),
	}, nil
}

// ArtifactName renders <targetBaseName>-<os>-<arch>.v.<version><targetExtension>.
func ArtifactName(c Convention, p Platform, version string) string {
	return fmt.Sprintf("%s-%s-%s.v.%s%s", c.TargetBaseName, p.OS, p.Arch, version, c.TargetExtension)
}

// BuildMode returns the cargo profile directory name.
func BuildMode(debug bool) string {
	if debug {
		return "debug"
	}
	return "release"
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
