package engine

import (
	"os"
	"path"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const projectRoot = "/project"

// countingFs records every mutation that reaches the wrapped filesystem.
type countingFs struct {
	afero.Fs
	renames int
	opens   int // opens for writing
}

func (c *countingFs) Rename(oldname, newname string) error {
	c.renames++
	return c.Fs.Rename(oldname, newname)
}

func (c *countingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&(os.O_WRONLY|os.O_RDWR) != 0 {
		c.opens++
	}
	return c.Fs.OpenFile(name, flag, perm)
}

func (c *countingFs) Create(name string) (afero.File, error) {
	c.opens++
	return c.Fs.Create(name)
}

func (c *countingFs) writes() int {
	return c.renames + c.opens
}

func (c *countingFs) reset() {
	c.renames = 0
	c.opens = 0
}

func newCountingFs() *countingFs {
	return &countingFs{Fs: afero.NewMemMapFs()}
}

func newTestLogger() (*logrus.Logger, *test.Hook) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return log, hook
}

// projectFiles is a miniature swc4j checkout one release behind.
var projectFiles = map[string]string{
	"build.gradle.kts": `object Config {
    object Versions {
        const val JAVA_VERSION = "1.8"
        const val SWC4J = "1.5.0"
    }
}
`,
	"README.md": "# swc4j\n\n" +
		"```xml\n<dependency>\n    <groupId>com.caoccao.javet</groupId>\n    <artifactId>swc4j</artifactId>\n    <version>1.5.0</version>\n</dependency>\n```\n\n" +
		"```kotlin\nimplementation(\"com.caoccao.javet:swc4j:1.5.0\")\n```\n\n" +
		"Snapshot:\n\n```xml\n<version>1.5.0-SNAPSHOT</version>\n```\n\n" +
		"```kotlin\nimplementation(\"com.caoccao.javet:swc4j:1.5.0-SNAPSHOT\")\n```\n",
	"rust/Cargo.toml": `[package]
name = "swc4j"
version = "1.5.0"
edition = "2021"

[dependencies]
anyhow = "1.0.86"

[dependencies.jni]
version = "0.21.1"
`,
	"rust/Cargo.lock": `# This file is automatically @generated by Cargo.
[[package]]
name = "anyhow"
version = "1.0.86"

[[package]]
name = "swc4j"
version = "1.5.0"
`,
	"rust/src/core.rs": `pub const VERSION: &'static str = "1.5.0";
`,
	"src/main/java/com/caoccao/javet/swc4j/Swc4jLibLoader.java": `/*
 * Copyright (c) 2024. caoccao.com Sam Cao
 */
package com.caoccao.javet.swc4j;

final class Swc4jLibLoader {
    private static final String LIB_VERSION = "1.5.0";
}
`,
	"src/test/java/com/caoccao/javet/swc4j/TestSwc4j.java": `/*
 * Copyright (c) 2024. caoccao.com Sam Cao
 */
public class TestSwc4j {
    @Test
    public void testGetVersion() {
        assertEquals("1.5.0", swc4j.getVersion());
    }
}
`,
}

func writeProject(t *testing.T, fsys afero.Fs) {
	t.Helper()
	for rel, content := range projectFiles {
		require.NoError(t, afero.WriteFile(fsys, path.Join(projectRoot, rel), []byte(content), 0644))
	}
}

func readProjectFile(t *testing.T, fsys afero.Fs, rel string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path.Join(projectRoot, rel))
	require.NoError(t, err)
	return string(data)
}

func writeFile(t *testing.T, fsys afero.Fs, name, content string, perm os.FileMode) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, name, []byte(content), perm))
}
