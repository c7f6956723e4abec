// Package version holds the table of files that embed the swc4j version and
// the span arithmetic used to rewrite those versions in place.
package version

import (
	"fmt"
	"regexp"
	"strings"
)

// Entry describes one file and where its version strings live.
// Capture group 1 of every pattern is the version text.
type Entry struct {
	Path       string // slash-separated, relative to the project root
	Patterns   []*regexp.Regexp
	Prerelease bool
}

// Want returns the version this entry should contain.
func (e Entry) Want(release, prerelease string) string {
	if e.Prerelease {
		return prerelease
	}
	return release
}

// Kind is "prerelease" or "release".
func (e Entry) Kind() string {
	if e.Prerelease {
		return "prerelease"
	}
	return "release"
}

const versionGroup = `(\d+\.\d+\.\d+)`

// literal builds a pattern from literal text in which "%v" marks the version.
func literal(text string) *regexp.Regexp {
	before, after, ok := strings.Cut(text, "%v")
	if !ok {
		panic(fmt.Sprintf("version pattern %q has no %%v marker", text))
	}
	return regexp.MustCompile(regexp.QuoteMeta(before) + versionGroup + regexp.QuoteMeta(after))
}

var registry = []Entry{
	{
		Path:     "build.gradle.kts",
		Patterns: []*regexp.Regexp{literal(`SWC4J = "%v"`)},
	},
	{
		Path: "README.md",
		Patterns: []*regexp.Regexp{
			literal(`<version>%v</version>`),
			literal(`swc4j:%v"`),
		},
	},
	{
		Path: "README.md",
		Patterns: []*regexp.Regexp{
			literal(`<version>%v-SNAPSHOT</version>`),
			literal(`swc4j:%v-SNAPSHOT"`),
		},
		Prerelease: true,
	},
	{
		// Only the [package] table; dependency tables carry their own versions.
		Path:     "rust/Cargo.toml",
		Patterns: []*regexp.Regexp{regexp.MustCompile(`(?m)^\[package\]\r?\n(?:(?:[^\[\r\n][^\r\n]*)?\r?\n)*?version = "` + versionGroup + `"`)},
	},
	{
		Path:     "rust/Cargo.lock",
		Patterns: []*regexp.Regexp{regexp.MustCompile(`name = "swc4j"\r?\nversion = "` + versionGroup + `"`)},
	},
	{
		Path:     "rust/src/core.rs",
		Patterns: []*regexp.Regexp{literal(`const VERSION: &'static str = "%v";`)},
	},
	{
		Path:     "src/main/java/com/caoccao/javet/swc4j/Swc4jLibLoader.java",
		Patterns: []*regexp.Regexp{literal(`LIB_VERSION = "%v";`)},
	},
	{
		Path:     "src/test/java/com/caoccao/javet/swc4j/TestSwc4j.java",
		Patterns: []*regexp.Regexp{literal(`assertEquals("%v", swc4j.getVersion())`)},
	},
}

// Registry returns the version-bearing files in processing order.
func Registry() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry)
	return out
}
