package output

import (
	"encoding/json"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// ReleaseEntry represents a single release catalog row.
type ReleaseEntry struct {
	Platform string `json:"platform"`
	Version  string `json:"version"`
	Codename string `json:"codename,omitempty"`
	Released string `json:"released"`
}

// ReleaseList implements Formatter for release catalog listings.
type ReleaseList struct {
	Entries []ReleaseEntry
	sorted  bool
}

// sort orders entries by platform ASC, version ASC (semver).
func (l *ReleaseList) sort() {
	if l.sorted {
		return
	}
	sort.SliceStable(l.Entries, func(i, j int) bool {
		if l.Entries[i].Platform != l.Entries[j].Platform {
			return l.Entries[i].Platform < l.Entries[j].Platform
		}
		vi, erri := semver.NewVersion(l.Entries[i].Version)
		vj, errj := semver.NewVersion(l.Entries[j].Version)
		if erri != nil || errj != nil {
			return l.Entries[i].Version < l.Entries[j].Version
		}
		return vi.LessThan(vj)
	})
	l.sorted = true
}

// FormatText returns kubectl-style table output with aligned columns.
// Header: PLATFORM, VERSION, CODENAME, RELEASED
func (l *ReleaseList) FormatText() string {
	if len(l.Entries) == 0 {
		return ""
	}
	l.sort()

	tw := NewTableWriter()
	tw.Header("PLATFORM", "VERSION", "CODENAME", "RELEASED")

	for _, e := range l.Entries {
		codename := e.Codename
		if codename == "" {
			codename = "-"
		}
		tw.Row(e.Platform, e.Version, codename, e.Released)
	}

	return tw.String()
}

// FormatJSON returns JSON array output.
func (l *ReleaseList) FormatJSON() ([]byte, error) {
	if len(l.Entries) == 0 {
		return []byte("[]"), nil
	}
	l.sort()
	return json.MarshalIndent(l.Entries, "", "  ")
}
