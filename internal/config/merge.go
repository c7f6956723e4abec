package config

import "fmt"

// Merge combines two configs where overlay takes precedence over base.
//   - version: must agree if both declare it (non-zero)
//   - every string field: a non-empty overlay value replaces the base value
func Merge(base, overlay *Config) (*Config, error) {
	if base == nil {
		return overlay, nil
	}
	if overlay == nil {
		return base, nil
	}

	result := *base

	switch {
	case overlay.Version == 0:
	case base.Version == 0 || base.Version == overlay.Version:
		result.Version = overlay.Version
	default:
		return nil, fmt.Errorf("version mismatch: %d vs %d", base.Version, overlay.Version)
	}

	mergeString(&result.Release, overlay.Release)
	mergeString(&result.Prerelease, overlay.Prerelease)
	mergeString(&result.BuildDir, overlay.BuildDir)
	mergeString(&result.ResourceDir, overlay.ResourceDir)

	return &result, nil
}

func mergeString(dst *string, overlay string) {
	if overlay != "" {
		*dst = overlay
	}
}
