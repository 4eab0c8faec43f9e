// Package platform defines the supported mobile platforms and flag helpers.
package platform

import (
	"fmt"
	"strings"
)

// Platform represents a supported mobile platform.
type Platform string

const (
	IOS     Platform = "ios"
	Android Platform = "android"
)

func (p Platform) String() string { return string(p) }

// All lists every supported platform.
var All = []Platform{IOS, Android}

// IsIOS reports whether input names the iOS platform. Matching is
// case-insensitive; empty input never matches.
func IsIOS(input string) bool {
	return strings.ToLower(input) == string(IOS)
}

// IsAndroid reports whether input names the Android platform. Matching is
// case-insensitive; empty input never matches.
func IsAndroid(input string) bool {
	return strings.ToLower(input) == string(Android)
}

// IsValid reports whether input names any supported platform.
func IsValid(input string) bool {
	return IsIOS(input) || IsAndroid(input)
}

// Resolve coerces a flag value of unknown type to a string, falling back
// to defaultValue when the flag is absent or empty. It never fails.
func Resolve(flag any, defaultValue string) string {
	if flag == nil {
		return defaultValue
	}
	s := fmt.Sprint(flag)
	if s == "" {
		return defaultValue
	}
	return s
}
