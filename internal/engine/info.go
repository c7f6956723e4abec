package engine

import (
	"path/filepath"

	"github.com/caoccao/swc4j/internal/target"
)

// ArtifactInfo describes one supported target and where it is published.
type ArtifactInfo struct {
	Platform       target.Platform
	SourceFileName string
	Artifact       string
	Destination    string // relative to the project root
}

// MatrixInfo lists every supported target with its artifact name for version.
func MatrixInfo(r *target.Resolver, version string) ([]ArtifactInfo, error) {
	m := r.Matrix
	if m == nil {
		m = target.NewMatrix()
	}

	var out []ArtifactInfo
	for _, p := range m.Platforms() {
		res, err := r.Resolve(string(p.OS), string(p.Arch), false, version)
		if err != nil {
			return nil, err
		}
		dest := res.DestinationPath()
		if rel, err := filepath.Rel(r.Root, dest); err == nil {
			dest = rel
		}
		out = append(out, ArtifactInfo{
			Platform:       res.Platform,
			SourceFileName: res.SourceFileName,
			Artifact:       res.DestinationFileName,
			Destination:    filepath.ToSlash(dest),
		})
	}
	return out, nil
}
