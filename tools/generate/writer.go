package generate

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// WriteCSV writes entries as the catalog CSV, sorted by platform then
// version ascending.
func WriteCSV(w io.Writer, entries []Entry) error {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Platform != sorted[j].Platform {
			return sorted[i].Platform < sorted[j].Platform
		}
		vi, erri := semver.NewVersion(sorted[i].Version)
		vj, errj := semver.NewVersion(sorted[j].Version)
		if erri != nil || errj != nil {
			return sorted[i].Version < sorted[j].Version
		}
		return vi.LessThan(vj)
	})

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"platform", "version", "codename", "released"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range sorted {
		if err := cw.Write([]string{e.Platform, e.Version, e.Codename, e.Released}); err != nil {
			return fmt.Errorf("write entry %s/%s: %w", e.Platform, e.Version, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
