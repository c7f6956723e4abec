package engine

import (
	"errors"

	"github.com/hashicorp/go-multierror"

	"github.com/caoccao/swc4j/internal/target"
)

var (
	// ErrSourceArtifactNotFound is returned when no search path holds the built library.
	ErrSourceArtifactNotFound = errors.New("source artifact not found")

	// ErrFileNotFound is recorded for a registry file that does not exist.
	ErrFileNotFound = errors.New("file not found")
)

// Occurrence actions.
const (
	ActionRewritten = "rewritten"
	ActionIgnored   = "ignored"
)

// FileAction represents the outcome for a single file during sync.
type FileAction struct {
	Path   string
	Action string // "written", "would write", "unchanged"
}

// FileError represents an error associated with a specific file.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Occurrence is one version string found in a file.
type Occurrence struct {
	Path   string
	Start  int
	End    int
	Found  string
	Want   string
	Action string // ActionRewritten or ActionIgnored
}

// SyncResult holds the outcome of a sync or check operation.
type SyncResult struct {
	Written     []FileAction
	Unchanged   []FileAction
	Occurrences []Occurrence
	Errors      []FileError
}

// Rewritten returns the occurrences whose version differed.
func (r *SyncResult) Rewritten() []Occurrence {
	var out []Occurrence
	for _, o := range r.Occurrences {
		if o.Action == ActionRewritten {
			out = append(out, o)
		}
	}
	return out
}

// Clean reports whether every file was present and already up to date.
func (r *SyncResult) Clean() bool {
	return len(r.Written) == 0 && len(r.Errors) == 0
}

// Err aggregates the per-file errors, or returns nil when there were none.
func (r *SyncResult) Err() error {
	var merr *multierror.Error
	for _, fe := range r.Errors {
		merr = multierror.Append(merr, fe)
	}
	return merr.ErrorOrNil()
}

// PublishResult holds the outcome of a publish operation.
type PublishResult struct {
	Platform    target.Platform
	Source      string
	Destination string
	Bytes       int64
	Fallback    bool // source came from the generic build directory
	DryRun      bool
}
