// Package release provides the public Go library API for the swc4j release
// tooling.
//
// # Basic Usage
//
//	client, err := release.New(release.Options{Root: "/path/to/swc4j"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Copy the built library for linux/arm64 into the resource tree
//	res, err := client.Publish(ctx, release.PublishOptions{OS: "linux", Arch: "arm64"})
//
//	// Rewrite version strings in every known project file
//	syncResult, err := client.Sync(ctx, release.SyncOptions{})
//
//	// Report version drift without writing
//	checkResult, err := client.Check(ctx)
package release

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/caoccao/swc4j/internal/config"
	"github.com/caoccao/swc4j/internal/engine"
	"github.com/caoccao/swc4j/internal/target"
)

// PublishOptions configures a publish operation.
type PublishOptions struct {
	OS     string
	Arch   string
	Debug  bool
	DryRun bool
}

// SyncOptions configures a sync operation.
type SyncOptions struct {
	DryRun bool
}

// Publisher copies a built native library into the resource tree.
type Publisher interface {
	Publish(ctx context.Context, opts PublishOptions) (*PublishResult, error)
}

// Syncer rewrites embedded version strings.
type Syncer interface {
	Sync(ctx context.Context, opts SyncOptions) (*SyncResult, error)
}

// Checker reports version drift without writing.
type Checker interface {
	Check(ctx context.Context) (*CheckResult, error)
}

// Options configures a release Client.
type Options struct {
	// Root is the swc4j checkout. If empty, it is discovered from the
	// working directory.
	Root string

	// ConfigPath is release.yaml, relative to Root unless absolute.
	// A missing file at the default location means built-in defaults.
	ConfigPath string

	// Fs is the filesystem the engines operate on. Default: the OS filesystem.
	Fs afero.Fs

	// Logger receives engine logs. Default: the logrus standard logger.
	Logger logrus.FieldLogger
}

// Client is the main entry point for the release library.
// It implements Publisher, Syncer and Checker.
type Client struct {
	root   string
	cfg    *config.Config
	fs     afero.Fs
	logger logrus.FieldLogger
}

var (
	_ Publisher = (*Client)(nil)
	_ Syncer    = (*Client)(nil)
	_ Checker   = (*Client)(nil)
)

// New creates a Client and loads its configuration.
func New(opts Options) (*Client, error) {
	root := opts.Root
	if root == "" {
		discovered, _, err := config.DiscoverRoot(".")
		if err != nil {
			return nil, fmt.Errorf("discovering project root: %w", err)
		}
		root = discovered
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	path := config.PathIn(root, opts.ConfigPath)
	var cfg *config.Config
	if opts.ConfigPath != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, _, err = config.LoadOptional(path)
	}
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Client{root: root, cfg: cfg, fs: fsys, logger: logger}, nil
}

// Root returns the project root the client operates on.
func (c *Client) Root() string {
	return c.root
}

// Release returns the configured release version.
func (c *Client) Release() string {
	return c.cfg.Release
}

// Prerelease returns the configured pre-release version.
func (c *Client) Prerelease() string {
	return c.cfg.Prerelease
}

func (c *Client) resolver() *target.Resolver {
	r := target.NewResolver(c.root)
	r.BuildDir = c.cfg.BuildDir
	r.ResourceDir = c.cfg.ResourceDir
	return r
}

func (c *Client) syncEngine() *engine.SyncEngine {
	return &engine.SyncEngine{Root: c.root, Fs: c.fs, Log: c.logger}
}

// Publish copies the built library for one target under its versioned name.
func (c *Client) Publish(ctx context.Context, opts PublishOptions) (*PublishResult, error) {
	eng := &engine.PublishEngine{Resolver: c.resolver(), Fs: c.fs, Log: c.logger}
	return eng.Publish(ctx, engine.PublishOptions{
		OS:      opts.OS,
		Arch:    opts.Arch,
		Debug:   opts.Debug,
		Version: c.cfg.Release,
		DryRun:  opts.DryRun,
	})
}

// Sync rewrites version strings in every known project file.
func (c *Client) Sync(ctx context.Context, opts SyncOptions) (*SyncResult, error) {
	return c.syncEngine().Sync(ctx, engine.SyncOptions{
		Release:    c.cfg.Release,
		Prerelease: c.cfg.Prerelease,
		DryRun:     opts.DryRun,
	})
}

// Check reports version drift without writing.
func (c *Client) Check(ctx context.Context) (*CheckResult, error) {
	eng := &engine.CheckEngine{Sync: c.syncEngine()}
	return eng.Check(ctx, c.cfg.Release, c.cfg.Prerelease)
}

// Matrix lists every supported target and its artifact name.
func (c *Client) Matrix() ([]ArtifactInfo, error) {
	return engine.MatrixInfo(c.resolver(), c.cfg.Release)
}
