package release

import (
	"github.com/caoccao/swc4j/internal/engine"
	"github.com/caoccao/swc4j/internal/sandbox"
	"github.com/caoccao/swc4j/internal/target"
	"github.com/caoccao/swc4j/internal/version"
)

// Type aliases re-export engine result types as the public API.

type FileAction = engine.FileAction
type FileError = engine.FileError
type Occurrence = engine.Occurrence
type SyncResult = engine.SyncResult
type CheckResult = engine.CheckResult
type PublishResult = engine.PublishResult
type ArtifactInfo = engine.ArtifactInfo

// Sentinel errors callers can test with errors.Is.
var (
	ErrSourceArtifactNotFound  = engine.ErrSourceArtifactNotFound
	ErrFileNotFound            = engine.ErrFileNotFound
	ErrUnsupportedPlatform     = target.ErrUnsupportedPlatform
	ErrUnsupportedArchitecture = target.ErrUnsupportedArchitecture
	ErrOverlappingSpans        = version.ErrOverlappingSpans
	ErrOutsideRoot             = sandbox.ErrOutsideRoot
)
