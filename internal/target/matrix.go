package target

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnsupportedPlatform is returned for an OS that is not in the matrix.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrUnsupportedArchitecture is returned for an architecture the OS does not list.
	ErrUnsupportedArchitecture = errors.New("unsupported architecture")
)

// OS identifies a target operating system.
type OS string

const (
	Windows OS = "windows"
	Linux   OS = "linux"
	Android OS = "android"
	MacOS   OS = "macos"
)

// Arch identifies a target CPU architecture.
type Arch string

const (
	X86   Arch = "x86"
	X8664 Arch = "x86_64"
	Arm   Arch = "arm"
	Arm64 Arch = "arm64"
)

var (
	knownOSes  = []OS{Android, Linux, MacOS, Windows}
	knownArchs = []Arch{X86, X8664, Arm, Arm64}
)

// ParseOS validates an operating system name.
func ParseOS(name string) (OS, error) {
	for _, o := range knownOSes {
		if string(o) == name {
			return o, nil
		}
	}
	names := make([]string, len(knownOSes))
	for i, o := range knownOSes {
		names[i] = string(o)
	}
	return "", fmt.Errorf("%w: '%s' — must be one of: %s", ErrUnsupportedPlatform, name, strings.Join(names, ", "))
}

// ParseArch validates an architecture name.
func ParseArch(name string) (Arch, error) {
	for _, a := range knownArchs {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: '%s' — must be one of: %s", ErrUnsupportedArchitecture, name, joinArchs(knownArchs))
}

// Convention holds the platform-specific library naming rules.
type Convention struct {
	SourceBaseName  string
	TargetBaseName  string
	SourceExtension string
	TargetExtension string
}

// SourceFileName is the file name the native build produces.
func (c Convention) SourceFileName() string {
	return c.SourceBaseName + c.SourceExtension
}

// Entry describes one OS in the matrix.
type Entry struct {
	OS         OS
	Convention Convention
	Triples    map[Arch]string
}

// Platform is a resolved (os, arch) pair and its build triple.
type Platform struct {
	OS     OS
	Arch   Arch
	Triple string
}

func (p Platform) String() string {
	return string(p.OS) + "/" + string(p.Arch)
}

// builtinMatrix lists every target the swc4j native library is built for.
var builtinMatrix = map[OS]Entry{
	Windows: {
		OS: Windows,
		Convention: Convention{
			SourceBaseName:  "swc4j",
			TargetBaseName:  "libswc4j",
			SourceExtension: ".dll",
			TargetExtension: ".dll",
		},
		Triples: map[Arch]string{
			X8664: "x86_64-pc-windows-msvc",
		},
	},
	Linux: {
		OS: Linux,
		Convention: Convention{
			SourceBaseName:  "libswc4j",
			TargetBaseName:  "libswc4j",
			SourceExtension: ".so",
			TargetExtension: ".so",
		},
		Triples: map[Arch]string{
			X8664: "x86_64-unknown-linux-gnu",
			Arm64: "aarch64-unknown-linux-gnu",
		},
	},
	MacOS: {
		OS: MacOS,
		Convention: Convention{
			SourceBaseName:  "libswc4j",
			TargetBaseName:  "libswc4j",
			SourceExtension: ".dylib",
			TargetExtension: ".dylib",
		},
		Triples: map[Arch]string{
			X8664: "x86_64-apple-darwin",
			Arm64: "aarch64-apple-darwin",
		},
	},
	Android: {
		OS: Android,
		Convention: Convention{
			SourceBaseName:  "libswc4j",
			TargetBaseName:  "libswc4j",
			SourceExtension: ".so",
			TargetExtension: ".so",
		},
		Triples: map[Arch]string{
			Arm:   "armv7-linux-androideabi",
			Arm64: "aarch64-linux-android",
			X86:   "i686-linux-android",
			X8664: "x86_64-linux-android",
		},
	},
}

// Matrix maps operating systems to naming conventions and build triples.
type Matrix struct {
	entries map[OS]Entry
}

// NewMatrix returns the built-in matrix.
func NewMatrix() *Matrix {
	return NewMatrixFrom(builtinMatrix)
}

// NewMatrixFrom builds a matrix from explicit entries. Used by tests and
// library callers that publish a differently named library.
func NewMatrixFrom(entries map[OS]Entry) *Matrix {
	m := &Matrix{entries: make(map[OS]Entry, len(entries))}
	for os, e := range entries {
		triples := make(map[Arch]string, len(e.Triples))
		for a, t := range e.Triples {
			triples[a] = t
		}
		e.Triples = triples
		m.entries[os] = e
	}
	return m
}

// Lookup returns the entry for an OS name.
func (m *Matrix) Lookup(name string) (Entry, error) {
	os, err := ParseOS(name)
	if err != nil {
		return Entry{}, err
	}
	e, ok := m.entries[os]
	if !ok {
		return Entry{}, fmt.Errorf("%w: '%s' — must be one of: %s", ErrUnsupportedPlatform, name, strings.Join(m.osNames(), ", "))
	}
	return e, nil
}

// Platform validates an (os, arch) pair and returns its build triple.
func (m *Matrix) Platform(osName, archName string) (Platform, Entry, error) {
	e, err := m.Lookup(osName)
	if err != nil {
		return Platform{}, Entry{}, err
	}
	arch, err := ParseArch(archName)
	if err != nil {
		return Platform{}, Entry{}, err
	}
	triple, ok := e.Triples[arch]
	if !ok {
		return Platform{}, Entry{}, fmt.Errorf("%w: '%s' is not built for %s — must be one of: %s",
			ErrUnsupportedArchitecture, arch, e.OS, joinArchs(SupportedArchs(e)))
	}
	return Platform{OS: e.OS, Arch: arch, Triple: triple}, e, nil
}

// OSes returns the operating systems in the matrix, sorted.
func (m *Matrix) OSes() []OS {
	names := m.osNames()
	out := make([]OS, len(names))
	for i, n := range names {
		out[i] = OS(n)
	}
	return out
}

// Platforms returns every supported (os, arch) pair, sorted by OS then arch.
func (m *Matrix) Platforms() []Platform {
	var out []Platform
	for _, os := range m.OSes() {
		e := m.entries[os]
		for _, a := range SupportedArchs(e) {
			out = append(out, Platform{OS: os, Arch: a, Triple: e.Triples[a]})
		}
	}
	return out
}

// SupportedArchs returns the architectures of an entry, sorted.
func SupportedArchs(e Entry) []Arch {
	archs := make([]Arch, 0, len(e.Triples))
	for a := range e.Triples {
		archs = append(archs, a)
	}
	sort.Slice(archs, func(i, j int) bool { return archs[i] < archs[j] })
	return archs
}

func (m *Matrix) osNames() []string {
	names := make([]string, 0, len(m.entries))
	for os := range m.entries {
		names = append(names, string(os))
	}
	sort.Strings(names)
	return names
}

func joinArchs(archs []Arch) string {
	s := make([]string, len(archs))
	for i, a := range archs {
		s[i] = string(a)
	}
	return strings.Join(s, ", ")
}
