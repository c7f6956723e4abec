package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/caoccao/swc4j/internal/sandbox"
	"github.com/caoccao/swc4j/internal/target"
)

// PublishEngine copies a freshly built native library into the resource tree
// under its versioned artifact name.
type PublishEngine struct {
	Resolver *target.Resolver
	Fs       afero.Fs
	Log      logrus.FieldLogger
}

// PublishOptions configures a publish operation.
type PublishOptions struct {
	OS      string
	Arch    string
	Debug   bool
	Version string
	DryRun  bool
}

// Publish resolves the target, finds the built library and copies it to
// the resource directory. An existing destination is overwritten. Nothing
// is written when the target is unsupported or the library is missing.
func (e *PublishEngine) Publish(ctx context.Context, opts PublishOptions) (*PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Version == "" {
		return nil, fmt.Errorf("publish: version is required")
	}

	res, err := e.Resolver.Resolve(opts.OS, opts.Arch, opts.Debug, opts.Version)
	if err != nil {
		return nil, err
	}

	log := logger(e.Log).WithField("platform", res.Platform.String())

	source, index, err := e.probe(res)
	if err != nil {
		log.WithError(err).Error("Native library is missing")
		return nil, err
	}

	result := &PublishResult{
		Platform:    res.Platform,
		Source:      source,
		Destination: res.DestinationPath(),
		Fallback:    index > 0,
		DryRun:      opts.DryRun,
	}
	log = log.WithFields(logrus.Fields{
		"source":      result.Source,
		"destination": result.Destination,
	})
	if result.Fallback {
		log.WithField("triple", res.Platform.Triple).Warn("Using library from the generic build directory")
	}

	if opts.DryRun {
		log.Info("Would publish native library")
		return result, nil
	}

	rel, err := filepath.Rel(e.Resolver.Root, result.Destination)
	if err != nil {
		return nil, fmt.Errorf("publish: %w", err)
	}
	n, err := sandbox.SafeCopy(e.fs(), source, e.Resolver.Root, rel)
	if err != nil {
		return nil, fmt.Errorf("publishing %s: %w", res.Platform, err)
	}
	result.Bytes = n

	log.WithField("bytes", n).Info("Published native library")
	return result, nil
}

// probe returns the first search path holding the source library as a
// regular file, and the index of that search path.
func (e *PublishEngine) probe(res *target.Resolution) (string, int, error) {
	fsys := e.fs()
	probed := make([]string, 0, len(res.SearchPaths))
	for i, dir := range res.SearchPaths {
		candidate := filepath.Join(dir, res.SourceFileName)
		probed = append(probed, candidate)
		info, err := fsys.Stat(candidate)
		if err == nil && info.Mode().IsRegular() {
			return candidate, i, nil
		}
	}
	return "", -1, fmt.Errorf("%w: %s for %s, looked in:\n  - %s",
		ErrSourceArtifactNotFound, res.SourceFileName, res.Platform, strings.Join(probed, "\n  - "))
}

func (e *PublishEngine) fs() afero.Fs {
	if e.Fs == nil {
		return afero.NewOsFs()
	}
	return e.Fs
}

func logger(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return logrus.StandardLogger()
	}
	return l
}
