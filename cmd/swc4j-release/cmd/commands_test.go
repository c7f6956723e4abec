package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caoccao/swc4j/internal/engine"
	"github.com/caoccao/swc4j/internal/target"
)

func TestPublishCommand(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "rust", "target", "aarch64-unknown-linux-gnu", "release", "libswc4j.so"), "lib")

	output, err := runCommand(t, "--root", root, "publish", "-o", "linux", "-a", "arm64")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "src", "main", "resources", "libswc4j-linux-arm64.v.1.6.0.so"))
	require.NoError(t, err)
	assert.Equal(t, "lib", string(data))
	assert.Contains(t, output, "src/main/resources/libswc4j-linux-arm64.v.1.6.0.so")
}

func TestPublishCommandPlatformSpecifier(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "rust", "target", "debug", "libswc4j.dylib"), "lib")
	writeTestFile(t, filepath.Join(root, "release.yaml"), "release: 2.0.0\nprerelease: 2.0.0\n")

	_, err := runCommand(t, "--root", root, "publish", "--platform", "darwin/arm64", "--debug")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "src", "main", "resources", "libswc4j-macos-arm64.v.2.0.0.dylib"))
}

func TestPublishCommandErrors(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		args []string
		want error
	}{
		{[]string{"-o", "beos"}, target.ErrUnsupportedPlatform},
		{[]string{"-o", "macos", "-a", "x86"}, target.ErrUnsupportedArchitecture},
		{[]string{"-o", "windows", "-a", "arm64"}, target.ErrUnsupportedArchitecture},
		{[]string{"-o", "linux", "-a", "x86_64"}, engine.ErrSourceArtifactNotFound},
	}
	for _, tt := range tests {
		args := append([]string{"--root", root, "publish"}, tt.args...)
		_, err := runCommand(t, args...)
		assert.ErrorIs(t, err, tt.want, "%v", tt.args)
	}

	assert.NoDirExists(t, filepath.Join(root, "src"), "failed publishes must not create the resource directory")
}

func TestPublishCommandRejectsConflictingFlags(t *testing.T) {
	_, err := runCommand(t, "--root", t.TempDir(), "publish", "--host", "--platform", "linux/amd64")
	assert.Error(t, err)
}

func TestPublishCommandVersionFlag(t *testing.T) {
	for _, flag := range []string{"-v", "--version"} {
		root := t.TempDir()

		output, err := runCommand(t, "--root", root, "publish", flag)
		require.NoError(t, err, flag)
		assert.Contains(t, output, "version dev", flag)
		assert.NoDirExists(t, filepath.Join(root, "src"), "publish %s must not publish anything", flag)
	}
}

func TestSyncAndCheckCommands(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "release.yaml"), "release: 1.6.0\nprerelease: 1.7.0\n")
	writeTestFile(t, filepath.Join(root, "build.gradle.kts"), `const val SWC4J = "1.5.0"`+"\n")
	writeTestFile(t, filepath.Join(root, "README.md"), "<version>1.5.0</version>\n<version>1.6.0-SNAPSHOT</version>\n")
	writeTestFile(t, filepath.Join(root, "rust", "Cargo.toml"), "[package]\nname = \"swc4j\"\nversion = \"1.5.0\"\n")
	writeTestFile(t, filepath.Join(root, "rust", "Cargo.lock"), "[[package]]\nname = \"swc4j\"\nversion = \"1.5.0\"\n")
	writeTestFile(t, filepath.Join(root, "rust", "src", "core.rs"), `const VERSION: &'static str = "1.5.0";`+"\n")
	writeTestFile(t, filepath.Join(root, "src", "main", "java", "com", "caoccao", "javet", "swc4j", "Swc4jLibLoader.java"), `LIB_VERSION = "1.5.0";`+"\n")
	writeTestFile(t, filepath.Join(root, "src", "test", "java", "com", "caoccao", "javet", "swc4j", "TestSwc4j.java"), `assertEquals("1.5.0", swc4j.getVersion());`+"\n")

	output, err := runCommand(t, "--root", root, "check")
	require.Error(t, err, "check should fail before sync")
	assert.Contains(t, output, "drifted   build.gradle.kts  1.5.0 -> 1.6.0")

	output, err = runCommand(t, "--root", root, "sync")
	require.NoError(t, err)
	assert.Contains(t, output, "8 written, 0 unchanged, 0 errors")

	readme, err := os.ReadFile(filepath.Join(root, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "<version>1.6.0</version>\n<version>1.7.0-SNAPSHOT</version>\n", string(readme))

	_, err = runCommand(t, "--root", root, "check")
	assert.NoError(t, err, "check after sync")
}

func TestSyncCommandReportsMissingFiles(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "build.gradle.kts"), `SWC4J = "1.0.0"`)

	output, err := runCommand(t, "--root", root, "sync")
	require.Error(t, err)
	assert.Contains(t, output, "1 written", "existing file should still be synced")

	data, err := os.ReadFile(filepath.Join(root, "build.gradle.kts"))
	require.NoError(t, err)
	assert.Equal(t, `SWC4J = "1.6.0"`, string(data))
}

func TestMatrixCommand(t *testing.T) {
	output, err := runCommand(t, "--root", t.TempDir(), "matrix")
	require.NoError(t, err)

	assert.Contains(t, output, "libswc4j-android-arm.v.1.6.0.so")
	assert.Contains(t, output, "libswc4j-windows-x86_64.v.1.6.0.dll")
	assert.Contains(t, output, "aarch64-apple-darwin")
	assert.NotContains(t, output, "aarch64-pc-windows-msvc")
}

func TestInvalidConfigFails(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "release.yaml"), "release: latest\n")

	_, err := runCommand(t, "--root", root, "sync")
	assert.Error(t, err)
}
