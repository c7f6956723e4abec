package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/caoccao/swc4j/internal/config"
	"github.com/caoccao/swc4j/internal/target"
)

// out receives user-facing output.
var out io.Writer = os.Stdout

// setupLogging configures the standard logger used by the engines.
func setupLogging(level string, disableColors bool) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{
		DisableColors:    disableColors,
		DisableTimestamp: true,
	})
	return nil
}

// projectRoot returns --root (or SWC4J_RELEASE_ROOT), else the nearest
// ancestor of the working directory that looks like an swc4j checkout,
// else the working directory.
func projectRoot() (string, error) {
	if dir := settings.GetString("root"); dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("resolving project root: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	root, found, err := config.DiscoverRoot(wd)
	if err != nil {
		return "", fmt.Errorf("discovering project root: %w", err)
	}
	if !found {
		log.WithField("root", root).Debug("No project marker found, using the working directory")
	}
	return root, nil
}

// loadConfig reads release.yaml from the project root. A missing file is
// only an error when the path was given explicitly.
func loadConfig(root string) (*config.Config, error) {
	explicit := settings.GetString("config")
	path := config.PathIn(root, explicit)

	if explicit != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
		return cfg, nil
	}

	cfg, found, err := config.LoadOptional(path)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if found {
		log.WithField("config", path).Debug("Loaded configuration")
	}
	return cfg, nil
}

// newResolver creates a Resolver for the configured directory layout.
func newResolver(root string, cfg *config.Config) *target.Resolver {
	r := target.NewResolver(root)
	r.BuildDir = cfg.BuildDir
	r.ResourceDir = cfg.ResourceDir
	return r
}

// relPath shortens path for display when it lies under root.
func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}

// info prints a line of user-facing output.
func info(format string, args ...any) {
	fmt.Fprintf(out, format+"\n", args...)
}

// detail prints an indented line only when debug logging is enabled.
func detail(format string, args ...any) {
	if log.IsLevelEnabled(log.DebugLevel) {
		fmt.Fprintf(out, "  "+format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
