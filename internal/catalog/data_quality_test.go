package catalog

import (
	"regexp"
	"testing"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/ivoronin/mobilevet/internal/platform"
	"github.com/ivoronin/mobilevet/internal/version"
)

// versionPattern matches valid catalog version strings (e.g., "9", "17.4")
var versionPattern = regexp.MustCompile(`^\d+(\.\d+)*$`)

func TestDataQuality_AllPlatformsPresent(t *testing.T) {
	for _, p := range platform.All {
		if len(Releases[p]) == 0 {
			t.Errorf("platform %q has no releases", p)
		}
	}
}

func TestDataQuality_MinReleasesPerPlatform(t *testing.T) {
	const minReleases = 5
	for p, rels := range Releases {
		if len(rels) < minReleases {
			t.Errorf("%s has only %d releases, expected >= %d", p, len(rels), minReleases)
		}
	}
}

func TestDataQuality_VersionFormat(t *testing.T) {
	for p, rels := range Releases {
		for _, rel := range rels {
			if !versionPattern.MatchString(rel.Version) {
				t.Errorf("%s release %q does not match version pattern", p, rel.Version)
			}
			// Every catalog version must be accepted by the version parser
			if _, err := version.Parse(rel.Version); err != nil {
				t.Errorf("%s release %q rejected by version.Parse: %v", p, rel.Version, err)
			}
		}
	}
}

func TestDataQuality_SortedAscending(t *testing.T) {
	for p, rels := range Releases {
		for i := 1; i < len(rels); i++ {
			prev := semver.MustParse(rels[i-1].Version)
			cur := semver.MustParse(rels[i].Version)
			if !prev.LessThan(cur) {
				t.Errorf("%s releases not sorted: %s before %s", p, rels[i-1].Version, rels[i].Version)
			}
		}
	}
}

func TestDataQuality_ReleaseDates(t *testing.T) {
	earliest := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	for p, rels := range Releases {
		for _, rel := range rels {
			if rel.Released.Before(earliest) {
				t.Errorf("%s %s has implausible release date %s", p, rel.Version, rel.Released.Format(DateFormat))
			}
		}
	}
}
