package release

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates path under dir with content.
func writeFile(t *testing.T, dir, path, content string) {
	t.Helper()
	full := filepath.Join(dir, filepath.FromSlash(path))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0644))
}

// newTestClient creates a client with a silent logger.
func newTestClient(t *testing.T, opts Options) *Client {
	t.Helper()
	logger, _ := test.NewNullLogger()
	opts.Logger = logger
	client, err := New(opts)
	require.NoError(t, err)
	return client
}

func TestNewDefaults(t *testing.T) {
	dir := t.TempDir()
	client := newTestClient(t, Options{Root: dir})

	assert.Equal(t, dir, client.Root())
	assert.Equal(t, "1.6.0", client.Release())
	assert.Equal(t, "1.6.0", client.Prerelease())
}

func TestNewReadsReleaseYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "release.yaml", "release: 1.8.0\nprerelease: 1.9.0\n")

	client := newTestClient(t, Options{Root: dir})
	assert.Equal(t, "1.8.0", client.Release())
	assert.Equal(t, "1.9.0", client.Prerelease())
}

func TestNewExplicitConfigMustExist(t *testing.T) {
	_, err := New(Options{Root: t.TempDir(), ConfigPath: "missing.yaml"})
	assert.Error(t, err)
}

func TestClientSyncAndCheck(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "release.yaml", "release: 1.6.0\nprerelease: 1.6.0\n")
	writeFile(t, dir, "rust/src/core.rs", `const VERSION: &'static str = "1.5.0";`)
	client := newTestClient(t, Options{Root: dir})

	check, err := client.Check(context.Background())
	require.NoError(t, err)
	assert.False(t, check.Clean, "expected drift before sync")
	assert.Len(t, check.Drifted, 1)

	res, err := client.Sync(context.Background(), SyncOptions{})
	require.NoError(t, err)
	assert.Len(t, res.Written, 1)
	assert.ErrorIs(t, res.Err(), ErrFileNotFound)

	data, err := os.ReadFile(filepath.Join(dir, "rust", "src", "core.rs"))
	require.NoError(t, err)
	assert.Equal(t, `const VERSION: &'static str = "1.6.0";`, string(data))
}

func TestClientPublishOnMemFs(t *testing.T) {
	fsys := afero.NewMemMapFs()
	root := string(filepath.Separator) + "swc4j"
	lib := filepath.Join(root, "rust", "target", "x86_64-linux-android", "release", "libswc4j.so")
	require.NoError(t, afero.WriteFile(fsys, lib, []byte("lib"), 0644))

	client := newTestClient(t, Options{Root: root, Fs: fsys})
	res, err := client.Publish(context.Background(), PublishOptions{OS: "android", Arch: "x86_64"})
	require.NoError(t, err)

	want := filepath.Join(root, "src", "main", "resources", "libswc4j-android-x86_64.v.1.6.0.so")
	assert.Equal(t, want, res.Destination)
	ok, err := afero.Exists(fsys, want)
	require.NoError(t, err)
	assert.True(t, ok, "published library missing")

	_, err = client.Publish(context.Background(), PublishOptions{OS: "android", Arch: "mips"})
	assert.ErrorIs(t, err, ErrUnsupportedArchitecture)
}

func TestClientMatrix(t *testing.T) {
	client := newTestClient(t, Options{Root: t.TempDir()})
	infos, err := client.Matrix()
	require.NoError(t, err)
	assert.Len(t, infos, 9)
}
