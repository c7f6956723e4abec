// Package sandbox confines release writes to the project root.
//
// Every write goes to a temporary file in the destination directory and is
// renamed into place, so a reader never observes a half-written file.
package sandbox

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrOutsideRoot is returned for paths that escape the project root.
var ErrOutsideRoot = errors.New("path is outside the project root")

const tempPattern = ".swc4j-release-*.tmp"

// ValidatePath resolves target against root and checks containment.
// target may be relative to root or absolute. The check is lexical.
func ValidatePath(root, target string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving project root: %w", err)
	}

	candidate := target
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(absRoot, candidate)
	}
	candidate = filepath.Clean(candidate)

	rel, err := filepath.Rel(absRoot, candidate)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: '%s' resolves to '%s' (root '%s')", ErrOutsideRoot, target, candidate, absRoot)
	}
	return candidate, nil
}

// SafeRead reads a file inside the project root.
func SafeRead(fsys afero.Fs, root, target string) ([]byte, error) {
	resolved, err := ValidatePath(root, target)
	if err != nil {
		return nil, err
	}
	return afero.ReadFile(fsys, resolved)
}

// SafeWrite atomically writes content to a path inside the project root,
// creating parent directories as needed.
func SafeWrite(fsys afero.Fs, root, target string, content []byte, perm os.FileMode) error {
	resolved, err := ValidatePath(root, target)
	if err != nil {
		return err
	}
	return atomicWrite(fsys, resolved, perm, func(w io.Writer) (int64, error) {
		n, err := w.Write(content)
		return int64(n), err
	})
}

// SafeCopy atomically copies src to a path inside the project root,
// replacing any existing file. The source permission bits are kept.
// Returns the number of bytes copied.
func SafeCopy(fsys afero.Fs, src, root, target string) (int64, error) {
	resolved, err := ValidatePath(root, target)
	if err != nil {
		return 0, err
	}

	in, err := fsys.Open(src)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", src, err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%s is a directory", src)
	}

	var copied int64
	err = atomicWrite(fsys, resolved, info.Mode().Perm(), func(w io.Writer) (int64, error) {
		n, err := io.Copy(w, in)
		copied = n
		return n, err
	})
	return copied, err
}

func atomicWrite(fsys afero.Fs, path string, perm os.FileMode, fill func(io.Writer) (int64, error)) error {
	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(fsys, dir, tempPattern)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = fsys.Remove(tmpPath)
		}
	}()

	if _, err := fill(tmp); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := fsys.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := fsys.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", path, err)
	}

	success = true
	return nil
}
