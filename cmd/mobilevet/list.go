package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivoronin/mobilevet/internal/catalog"
	"github.com/ivoronin/mobilevet/internal/filter"
	"github.com/ivoronin/mobilevet/internal/output"
	"github.com/ivoronin/mobilevet/internal/platform"
)

var (
	listJSON   bool
	listFilter string
	listLatest bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List known OS releases",
	Long:  `Display the embedded mobile OS release catalog.`,
	Args:  cobra.NoArgs,
	Example: `  mobilevet list
  mobilevet list -j
  mobilevet list -f 'ios>=16,android>=13'
  mobilevet list --latest`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listJSON, "json", "j", false, "Output in JSON format")
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "Filter expression (e.g., ios>=15,android>=10)")
	listCmd.Flags().BoolVar(&listLatest, "latest", false, "Show only the newest release per platform")
}

func runList(cmd *cobra.Command, args []string) error {
	// Parse filter
	var f *filter.Filter
	if listFilter != "" {
		var err error
		f, err = filter.Parse(listFilter)
		if err != nil {
			return fmt.Errorf("invalid filter: %w", err)
		}
	}

	releases := filter.Releases(catalog.Releases, f)
	if listLatest {
		releases = latestOnly(releases)
	}

	entries := buildReleaseEntries(releases)
	if len(entries) == 0 {
		return nil // Empty result is not an error
	}

	list := &output.ReleaseList{Entries: entries}
	format := output.FormatText
	if listJSON {
		format = output.FormatJSON
	}
	result, err := output.FormatOutput(list, format)
	if err != nil {
		return err
	}
	fmt.Println(result)

	return nil
}

// latestOnly keeps only the newest release for each platform. Release
// slices are already sorted ascending.
func latestOnly(releases map[platform.Platform][]catalog.Release) map[platform.Platform][]catalog.Release {
	latest := make(map[platform.Platform][]catalog.Release, len(releases))
	for p, rels := range releases {
		if len(rels) == 0 {
			continue
		}
		latest[p] = rels[len(rels)-1:]
	}
	return latest
}

// buildReleaseEntries converts catalog releases to output entries.
func buildReleaseEntries(releases map[platform.Platform][]catalog.Release) []output.ReleaseEntry {
	var entries []output.ReleaseEntry
	for _, rels := range releases {
		for _, rel := range rels {
			entries = append(entries, output.ReleaseEntry{
				Platform: rel.Platform.String(),
				Version:  rel.Version,
				Codename: rel.Codename,
				Released: rel.Released.Format(catalog.DateFormat),
			})
		}
	}
	return entries
}
