package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Part identifies which component of a semantic version to bump.
type Part string

const (
	PartMajor Part = "major"
	PartMinor Part = "minor"
	PartPatch Part = "patch"
)

// ParsePart accepts a case-insensitive part name.
func ParsePart(s string) (Part, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "major":
		return PartMajor, nil
	case "minor":
		return PartMinor, nil
	case "patch":
		return PartPatch, nil
	}
	return "", &OpError{
		Op:   "semver.parsepart",
		Kind: KindInvalidVersion,
		Err:  fmt.Errorf("unknown part %q (expected major, minor or patch)", s),
	}
}

// semverRe accepts MAJOR.MINOR.PATCH with optional -prerelease and +build
// suffixes. Identifiers are kept permissive (dots and hyphens allowed) so
// that tags like 1.2.3-rc.0.0+build.11.e0f985a parse.
var semverRe = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:-([0-9A-Za-z][0-9A-Za-z.-]*))?(?:\+([0-9A-Za-z][0-9A-Za-z.-]*))?$`)

// InvalidVersionError reports input that does not parse as a semantic version.
type InvalidVersionError struct {
	Input string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("%s is an invalid semantic version", e.Input)
}

// Semver is a parsed semantic version. Prerelease and Build hold the raw
// identifier strings without their leading '-' / '+'.
type Semver struct {
	Major      int
	Minor      int
	Patch      int
	Prerelease string
	Build      string
}

func ParseSemver(s string) (Semver, error) {
	m := semverRe.FindStringSubmatch(s)
	if m == nil {
		return Semver{}, &InvalidVersionError{Input: s}
	}

	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Semver{}, &InvalidVersionError{Input: s}
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Semver{}, &InvalidVersionError{Input: s}
	}
	patch, err := strconv.Atoi(m[3])
	if err != nil {
		return Semver{}, &InvalidVersionError{Input: s}
	}

	return Semver{
		Major:      major,
		Minor:      minor,
		Patch:      patch,
		Prerelease: m[4],
		Build:      m[5],
	}, nil
}

// Bump returns a copy with the named part incremented, lower parts reset to
// zero and any prerelease/build identifiers dropped. 3.4.5-rc1+build4 bumped
// at patch becomes 3.4.6.
func (v Semver) Bump(part Part) Semver {
	next := Semver{Major: v.Major, Minor: v.Minor, Patch: v.Patch}

	switch part {
	case PartMajor:
		next.Major++
		next.Minor = 0
		next.Patch = 0
	case PartMinor:
		next.Minor++
		next.Patch = 0
	case PartPatch:
		next.Patch++
	}
	return next
}

func (v Semver) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		b.WriteByte('-')
		b.WriteString(v.Prerelease)
	}
	if v.Build != "" {
		b.WriteByte('+')
		b.WriteString(v.Build)
	}
	return b.String()
}

// StripPrefix splits a tag like "v1.0.1" into its non-numeric prefix and the
// version part. Tags without a prefix return an empty prefix.
func StripPrefix(tag string) (prefix, version string) {
	i := strings.IndexFunc(tag, func(r rune) bool {
		return r >= '0' && r <= '9'
	})
	if i <= 0 {
		return "", tag
	}
	return tag[:i], tag[i:]
}
