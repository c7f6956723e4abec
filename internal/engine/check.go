package engine

import (
	"context"
	"errors"
	"fmt"
)

// CheckEngine reports version drift without modifying any file.
type CheckEngine struct {
	Sync *SyncEngine
}

// CheckResult holds the outcome of a check operation.
type CheckResult struct {
	Clean   bool
	Drifted []Occurrence
	Stale   []string // files a sync would rewrite
	Missing []string
	Errors  []FileError
}

// Check runs the sync engine in dry-run mode.
func (e *CheckEngine) Check(ctx context.Context, release, prerelease string) (*CheckResult, error) {
	if e.Sync == nil {
		return nil, fmt.Errorf("check: sync engine is required")
	}
	res, err := e.Sync.Sync(ctx, SyncOptions{
		Release:    release,
		Prerelease: prerelease,
		DryRun:     true,
	})
	if err != nil {
		return nil, err
	}

	out := &CheckResult{Drifted: res.Rewritten()}
	for _, fa := range res.Written {
		out.Stale = append(out.Stale, fa.Path)
	}
	for _, fe := range res.Errors {
		if errors.Is(fe, ErrFileNotFound) {
			out.Missing = append(out.Missing, fe.Path)
			continue
		}
		out.Errors = append(out.Errors, fe)
	}
	out.Clean = res.Clean()
	return out, nil
}
