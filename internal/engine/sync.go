package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/caoccao/swc4j/internal/sandbox"
	"github.com/caoccao/swc4j/internal/version"
)

// SyncEngine rewrites the version strings of every registry file so they
// match the configured release and pre-release versions.
type SyncEngine struct {
	Root    string
	Entries []version.Entry // version.Registry() when nil
	Fs      afero.Fs
	Log     logrus.FieldLogger
}

// SyncOptions configures a sync operation.
type SyncOptions struct {
	Release    string
	Prerelease string
	DryRun     bool
}

// Sync processes the registry entries in order. A failure in one file is
// recorded in the result and processing continues with the next entry.
// Files are written only when their content changes.
// The returned error is non-nil only when ctx is done.
func (e *SyncEngine) Sync(ctx context.Context, opts SyncOptions) (*SyncResult, error) {
	if opts.Release == "" || opts.Prerelease == "" {
		return nil, fmt.Errorf("sync: release and prerelease versions are required")
	}

	entries := e.Entries
	if entries == nil {
		entries = version.Registry()
	}

	result := &SyncResult{}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		e.syncEntry(entry, opts, result)
	}
	return result, nil
}

func (e *SyncEngine) syncEntry(entry version.Entry, opts SyncOptions, result *SyncResult) {
	fsys := e.fs()
	want := entry.Want(opts.Release, opts.Prerelease)
	log := logger(e.Log).WithFields(logrus.Fields{
		"file": entry.Path,
		"kind": entry.Kind(),
	})

	fail := func(err error) {
		log.WithError(err).Error("Cannot synchronize version")
		result.Errors = append(result.Errors, FileError{Path: entry.Path, Err: err})
	}

	path, err := sandbox.ValidatePath(e.Root, filepath.FromSlash(entry.Path))
	if err != nil {
		fail(err)
		return
	}

	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		fail(err)
		return
	}
	content, err := sandbox.SafeRead(fsys, e.Root, path)
	if err != nil {
		fail(fmt.Errorf("reading %s: %w", path, err))
		return
	}

	// Up-to-date matches take part in the overlap check too.
	spans := version.FindSpans(content, entry.Patterns)
	if err := version.SortSpans(spans); err != nil {
		fail(err)
		return
	}

	var kept []version.Span
	for _, s := range spans {
		if s.Text == want {
			log.WithFields(logrus.Fields{"offset": s.Start, "version": s.Text}).Debug("Version is up to date")
			result.Occurrences = append(result.Occurrences, occurrence(entry.Path, s, want, ActionIgnored))
			continue
		}
		kept = append(kept, s)
	}

	updated, err := version.Splice(content, kept, want)
	if err != nil {
		fail(err)
		return
	}

	if bytes.Equal(updated, content) {
		result.Unchanged = append(result.Unchanged, FileAction{Path: entry.Path, Action: "unchanged"})
		return
	}

	action, msg := "written", "Rewrote version"
	if opts.DryRun {
		action, msg = "would write", "Version differs"
	} else if err := sandbox.SafeWrite(fsys, e.Root, path, updated, info.Mode().Perm()); err != nil {
		fail(fmt.Errorf("writing %s: %w", path, err))
		return
	}

	for _, s := range kept {
		log.WithFields(logrus.Fields{"offset": s.Start, "from": s.Text, "to": want}).Info(msg)
		result.Occurrences = append(result.Occurrences, occurrence(entry.Path, s, want, ActionRewritten))
	}
	result.Written = append(result.Written, FileAction{Path: entry.Path, Action: action})
}

func occurrence(path string, s version.Span, want, action string) Occurrence {
	return Occurrence{
		Path:   path,
		Start:  s.Start,
		End:    s.End,
		Found:  s.Text,
		Want:   want,
		Action: action,
	}
}

func (e *SyncEngine) fs() afero.Fs {
	if e.Fs == nil {
		return afero.NewOsFs()
	}
	return e.Fs
}
