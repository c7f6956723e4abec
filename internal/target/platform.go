package target

import (
	"fmt"

	"github.com/containerd/platforms"
	specs "github.com/opencontainers/image-spec/specs-go/v1"
)

// ParseSpecifier converts an OCI-style "os/arch" specifier into matrix names.
// Aliases such as darwin, amd64, aarch64 and 386 are accepted.
// The returned names are not validated against the matrix.
func ParseSpecifier(specifier string) (string, string, error) {
	p, err := platforms.Parse(specifier)
	if err != nil {
		return "", "", fmt.Errorf("parsing platform %q: %w", specifier, err)
	}
	if p.Architecture == "" {
		return "", "", fmt.Errorf("parsing platform %q: architecture is required", specifier)
	}
	osName, archName := fromSpec(p)
	return osName, archName, nil
}

// Host returns the matrix names for the running machine.
func Host() (string, string) {
	return fromSpec(platforms.DefaultSpec())
}

func fromSpec(p specs.Platform) (string, string) {
	p = platforms.Normalize(p)

	osName := p.OS
	if p.OS == "darwin" {
		osName = string(MacOS)
	}

	archName := p.Architecture
	switch p.Architecture {
	case "amd64":
		archName = string(X8664)
	case "386":
		archName = string(X86)
	}
	return osName, archName
}
