// Package catalog provides the embedded mobile OS release catalog.
package catalog

import (
	"embed"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/ivoronin/mobilevet/internal/platform"
)

//go:embed data/releases.csv
var dataFS embed.FS

// DateFormat is the ISO 8601 date format used for release dates.
const DateFormat = "2006-01-02"

// Release describes a single OS release of a platform.
type Release struct {
	Platform platform.Platform `json:"platform"`
	Version  string            `json:"version"`
	Codename string            `json:"codename,omitempty"`
	Released time.Time         `json:"released"`
}

// Releases maps each platform to its releases, sorted by version ascending.
var Releases = make(map[platform.Platform][]Release)

func init() {
	if err := loadReleases(); err != nil {
		panic(fmt.Sprintf("failed to load release catalog: %v", err))
	}
}

// loadReleases parses releases from the embedded CSV and sorts them.
func loadReleases() error {
	f, err := dataFS.Open("data/releases.csv")
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)

	// Skip header
	if _, err := r.Read(); err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read record: %w", err)
		}

		rel, err := parseRecord(record)
		if err != nil {
			return err
		}
		Releases[rel.Platform] = append(Releases[rel.Platform], rel)
	}

	for p := range Releases {
		sortReleases(Releases[p])
	}

	return nil
}

// parseRecord converts a CSV record (platform,version,codename,released)
// into a Release.
func parseRecord(record []string) (Release, error) {
	const fields = 4
	if len(record) != fields {
		return Release{}, fmt.Errorf("record has %d fields, want %d", len(record), fields)
	}

	p := record[0]
	if !platform.IsValid(p) {
		return Release{}, fmt.Errorf("unknown platform %q", p)
	}

	released, err := time.Parse(DateFormat, record[3])
	if err != nil {
		return Release{}, fmt.Errorf("release date for %s %s: %w", p, record[1], err)
	}

	return Release{
		Platform: platform.Platform(p),
		Version:  record[1],
		Codename: record[2],
		Released: released,
	}, nil
}

// sortReleases orders releases by version ascending. Catalog versions are
// well-formed, so strict semantic ordering applies; malformed versions
// sort last.
func sortReleases(rels []Release) {
	sort.SliceStable(rels, func(i, j int) bool {
		vi, erri := semver.NewVersion(rels[i].Version)
		vj, errj := semver.NewVersion(rels[j].Version)
		if erri != nil || errj != nil {
			return errj != nil && erri == nil
		}
		return vi.LessThan(vj)
	})
}

// Latest returns the newest release for a platform. The second return
// value is false when the platform has no releases.
func Latest(p platform.Platform) (Release, bool) {
	rels := Releases[p]
	if len(rels) == 0 {
		return Release{}, false
	}
	return rels[len(rels)-1], true
}
