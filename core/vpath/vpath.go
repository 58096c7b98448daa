// Package vpath implements the volume path grammar used by the shell.
//
// Paths are prefixed with a volume label and use backslash separators, for
// example 0:\docs\notes.txt. Forward slashes are accepted on input and
// rewritten as backslashes. Functions in this package never touch a
// filesystem.
package vpath

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

const (
	// Separator separates path components.
	Separator = '\\'
	// AltSeparator is accepted on input and normalized to Separator.
	AltSeparator = '/'
	// VolumeSeparator ends the volume label.
	VolumeSeparator = ':'
)

// ErrAboveRoot is returned by Resolve when asked for the parent of a volume
// root under the RejectAboveRoot policy.
var ErrAboveRoot = errors.New("cannot move above the volume root")

// RootPolicy decides what ".." means at the root of a volume.
type RootPolicy int

const (
	// StayAtRoot resolves the parent of a root to the root itself.
	StayAtRoot RootPolicy = iota
	// RejectAboveRoot fails with ErrAboveRoot.
	RejectAboveRoot
)

// ParseRootPolicy converts the configuration spelling of a policy.
func ParseRootPolicy(s string) (RootPolicy, error) {
	switch s {
	case "", "stay":
		return StayAtRoot, nil
	case "error":
		return RejectAboveRoot, nil
	default:
		return StayAtRoot, fmt.Errorf("unknown root policy %q", s)
	}
}

// Root returns the root path of the volume with the given label.
func Root(label string) string {
	return label + string(VolumeSeparator) + string(Separator)
}

func normalize(p string) string {
	return strings.ReplaceAll(p, string(AltSeparator), string(Separator))
}

// volumeLen returns the length of the "label:" prefix of p or 0 if p has none.
func volumeLen(p string) int {
	i := strings.IndexByte(p, VolumeSeparator)
	if i <= 0 {
		return 0
	}
	for _, r := range p[:i] {
		if !isLabelRune(r) {
			return 0
		}
	}
	return i + 1
}

func isLabelRune(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

// IsRooted reports whether p carries a volume label.
func IsRooted(p string) bool {
	return volumeLen(p) > 0
}

// Split breaks p into its volume label and the volume relative remainder
// without leading or trailing separators.
func Split(p string) (label, rest string, ok bool) {
	p = normalize(p)
	vl := volumeLen(p)
	if vl == 0 {
		return "", "", false
	}
	return p[:vl-1], strings.Trim(p[vl:], string(Separator)), true
}

// ToSlash converts the volume relative part of a path into a clean absolute
// slash separated path, "docs\a.txt" becomes "/docs/a.txt". "." and ".."
// components are collapsed and never climb above "/".
func ToSlash(rest string) string {
	return path.Clean("/" + strings.ReplaceAll(normalize(rest), string(Separator), "/"))
}

// Join appends name to dir.
//
// A name carrying its own volume label replaces dir entirely and a name
// starting with a separator is taken from the root of dir's volume. No "." or
// ".." components are collapsed.
func Join(dir, name string) string {
	name = normalize(name)
	switch {
	case name == "":
		return dir
	case IsRooted(name):
		if len(name) == volumeLen(name) {
			return name + string(Separator)
		}
		return name
	case name[0] == Separator:
		label, _, ok := Split(dir)
		if !ok {
			return name
		}
		return Root(label) + strings.TrimLeft(name, string(Separator))
	case strings.HasSuffix(dir, string(Separator)):
		return dir + name
	default:
		return dir + string(Separator) + name
	}
}

// Parent strips trailing separators and then the last component of p. The
// second result is false if p is a root (or has no component to strip), in
// which case p is returned unchanged.
func Parent(p string) (string, bool) {
	trimmed := strings.TrimRight(normalize(p), string(Separator))
	vl := volumeLen(trimmed)
	if vl > 0 && len(trimmed) == vl {
		return p, false
	}

	i := strings.LastIndexByte(trimmed, Separator)
	if i < 0 {
		return p, false
	}

	parent := trimmed[:i]
	if vl > 0 && len(parent) == vl {
		parent += string(Separator)
	}
	return parent, true
}

// Resolve computes the directory a cd to token from cwd lands on.
//
// ".." moves to the parent of cwd, the policy decides what happens at a volume
// root. Anything else is joined onto cwd.
func Resolve(cwd, token string, policy RootPolicy) (string, error) {
	if token != ".." {
		return Join(cwd, token), nil
	}

	if parent, ok := Parent(cwd); ok {
		return parent, nil
	}

	if policy == RejectAboveRoot {
		return cwd, ErrAboveRoot
	}
	return cwd, nil
}
