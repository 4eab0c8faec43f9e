package filter

import (
	"github.com/samber/lo"

	"github.com/ivoronin/mobilevet/internal/catalog"
	"github.com/ivoronin/mobilevet/internal/collections"
	"github.com/ivoronin/mobilevet/internal/platform"
	"github.com/ivoronin/mobilevet/internal/version"
)

// operatorMatchers maps operators to three-way comparison predicates.
// cmp is -1/0/1 from version.Value.Compare.
var operatorMatchers = map[Operator]func(cmp int) bool{
	OpEqual:        func(cmp int) bool { return cmp == 0 },
	OpGreater:      func(cmp int) bool { return cmp > 0 },
	OpLess:         func(cmp int) bool { return cmp < 0 },
	OpGreaterEqual: func(cmp int) bool { return cmp >= 0 },
	OpLessEqual:    func(cmp int) bool { return cmp <= 0 },
}

// Match checks if a platform version satisfies the filter.
// Logic: AND within same platform, OR across platforms.
func (f *Filter) Match(p platform.Platform, v version.Value) bool {
	if f == nil || len(f.Constraints) == 0 {
		return true
	}

	// Group constraints by platform
	byPlatform := make(map[platform.Platform][]Constraint)
	for _, c := range f.Constraints {
		byPlatform[c.Platform] = append(byPlatform[c.Platform], c)
	}

	// Check if this platform is even in the filter
	constraints, ok := byPlatform[p]
	if !ok {
		return false // Platform not in filter
	}

	// All constraints for this platform must match (AND)
	for _, c := range constraints {
		if !matchConstraint(c, v) {
			return false
		}
	}
	return true
}

// matchConstraint compares a constraint against a version value.
func matchConstraint(c Constraint, v version.Value) bool {
	// Bare platform matches any version
	if c.Version == nil {
		return true
	}

	match, ok := operatorMatchers[c.Operator]
	if !ok {
		return false // Unknown operator
	}

	return match(v.Compare(*c.Version))
}

// Releases returns the subset of a release catalog matching the filter.
// Platforms with no surviving releases are dropped. Releases whose version
// string does not parse are dropped as well.
func Releases(rels map[platform.Platform][]catalog.Release, f *Filter) map[platform.Platform][]catalog.Release {
	if f == nil {
		return rels
	}

	filtered := collections.FilterMap(rels, func(p platform.Platform, prels []catalog.Release) bool {
		return len(matchingReleases(p, prels, f)) > 0
	})

	return lo.MapValues(filtered, func(prels []catalog.Release, p platform.Platform) []catalog.Release {
		return matchingReleases(p, prels, f)
	})
}

// matchingReleases filters one platform's releases against the filter.
func matchingReleases(p platform.Platform, rels []catalog.Release, f *Filter) []catalog.Release {
	return lo.Filter(rels, func(rel catalog.Release, _ int) bool {
		v, err := version.Parse(rel.Version)
		if err != nil {
			return false
		}
		return f.Match(p, v)
	})
}
