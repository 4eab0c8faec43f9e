// Package version provides OS version parsing and comparison utilities.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// segments is the number of components a Value carries (major.minor.patch).
const segments = 3

// Weights used to collapse a Value into a single comparable scalar.
// Components of 10 or more spill into the next weight (1.10.0 weighs the
// same as 2.0.0), so ordering near that boundary follows the weighting,
// not strict semver.
const (
	majorWeight = 100
	minorWeight = 10
	patchWeight = 1
)

// ParseError is returned when an input cannot be parsed as a version.
// Input preserves the original (untrimmed) string for diagnostics.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid version string: %q", e.Input)
}

// Value is an immutable three-component OS version (major.minor.patch).
// The zero Value is "0.0.0". Values are plain data and safe to copy.
type Value struct {
	major int
	minor int
	patch int
}

// New constructs a Value from explicit components.
func New(major, minor, patch int) Value {
	return Value{major: major, minor: minor, patch: patch}
}

// isVersionChar reports whether c may appear in a version string.
func isVersionChar(c rune) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == '-'
}

// Parse parses a version string into a Value.
//
// The input is trimmed and lower-cased, "-" separators are treated as ".",
// and the first three dot-separated segments become major, minor and patch.
// Missing trailing segments default to zero ("13" parses as 13.0.0), extra
// segments are ignored. Any character outside digits, "." and "-", or any
// present segment that is not a base-10 integer (including an empty
// segment, as in "13.0."), fails with a *ParseError carrying the original
// input. Empty and whitespace-only inputs fail the same way.
func Parse(input string) (Value, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))

	for _, c := range normalized {
		if !isVersionChar(c) {
			return Value{}, &ParseError{Input: input}
		}
	}

	normalized = strings.ReplaceAll(normalized, "-", ".")
	parts := strings.Split(normalized, ".")

	var nums [segments]int
	for i := 0; i < segments && i < len(parts); i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return Value{}, &ParseError{Input: input}
		}
		nums[i] = n
	}

	return Value{major: nums[0], minor: nums[1], patch: nums[2]}, nil
}

// Major returns the major component.
func (v Value) Major() int { return v.major }

// Minor returns the minor component.
func (v Value) Minor() int { return v.minor }

// Patch returns the patch component.
func (v Value) Patch() int { return v.patch }

func (v Value) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

// weight collapses the version into its comparison scalar.
func (v Value) weight() int {
	return v.major*majorWeight + v.minor*minorWeight + v.patch*patchWeight
}

// Compare returns -1 if v is older than other, 0 if equal, 1 if newer.
// Comparison uses the fixed decimal weighting scheme; see the weight
// constants for the boundary behavior.
func (v Value) Compare(other Value) int {
	a, b := v.weight(), other.weight()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Same reports whether v compares equal to other.
func (v Value) Same(other Value) bool {
	return v.Compare(other) == 0
}

// SameOrNewer reports whether v compares equal to or newer than other.
func (v Value) SameOrNewer(other Value) bool {
	return v.Compare(other) > -1
}
