// Package generate provides release catalog generation tools.
package generate

// Entry is a single release catalog row (CSV: platform,version,codename,released).
type Entry struct {
	Platform string
	Version  string
	Codename string
	Released string // ISO 8601 date
}

// ReleaseGenerator discovers OS releases for one platform.
type ReleaseGenerator interface {
	Name() string
	Generate() ([]Entry, error)
}
