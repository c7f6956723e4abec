package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// Load reads and validates a release.yaml file. Fields the file leaves
// empty fall back to the built-in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg, err := Merge(Default(), &file)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if errs := Validate(cfg); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}
	return cfg, nil
}

// LoadOptional loads path if it exists and returns the defaults otherwise.
func LoadOptional(path string) (*Config, bool, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), false, nil
	}
	return nil, false, err
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Config for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(cfg *Config) []string {
	var errs []string

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported version %d — only version 1 is supported", cfg.Version))
	}

	release, err := parseVersion("release", cfg.Release)
	if err != nil {
		errs = append(errs, err.Error())
	}
	prerelease, err := parseVersion("prerelease", cfg.Prerelease)
	if err != nil {
		errs = append(errs, err.Error())
	}
	if release != nil && prerelease != nil && prerelease.LessThan(release) {
		errs = append(errs, fmt.Sprintf("prerelease %s is lower than release %s", prerelease, release))
	}

	for _, d := range []struct{ field, value string }{
		{"build_dir", cfg.BuildDir},
		{"resource_dir", cfg.ResourceDir},
	} {
		if d.value == "" {
			errs = append(errs, fmt.Sprintf("'%s' is required", d.field))
			continue
		}
		if filepath.IsAbs(d.value) {
			errs = append(errs, fmt.Sprintf("'%s' must be relative to the project root, got '%s'", d.field, d.value))
		} else if clean := filepath.Clean(d.value); clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			errs = append(errs, fmt.Sprintf("'%s' must stay inside the project root, got '%s'", d.field, d.value))
		}
	}

	return errs
}

// parseVersion accepts only plain major.minor.patch versions, the shape
// every version-bearing file embeds.
func parseVersion(field, value string) (*semver.Version, error) {
	if value == "" {
		return nil, fmt.Errorf("'%s' is required", field)
	}
	v, err := semver.StrictNewVersion(value)
	if err != nil {
		return nil, fmt.Errorf("%s '%s' is not a valid version: %v", field, value, err)
	}
	if v.Prerelease() != "" || v.Metadata() != "" {
		return nil, fmt.Errorf("%s '%s' must be of the form major.minor.patch", field, value)
	}
	return v, nil
}
