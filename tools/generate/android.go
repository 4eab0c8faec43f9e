package generate

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/ivoronin/mobilevet/internal/collections"
	"github.com/ivoronin/mobilevet/internal/platform"
)

const (
	androidRefsURL    = "https://android.googlesource.com/platform/build/+refs/heads?format=TEXT"
	minAndroidVersion = 7 // Android 7 (Nougat) and later only
)

// androidCodenames maps major versions to their dessert codenames.
var androidCodenames = map[int]string{
	7:  "Nougat",
	8:  "Oreo",
	9:  "Pie",
	10: "Quince Tart",
	11: "Red Velvet Cake",
	12: "Snow Cone",
	13: "Tiramisu",
	14: "Upside Down Cake",
	15: "Vanilla Ice Cream",
	16: "Baklava",
}

// androidReleaseDates maps major versions to initial release dates.
// googlesource refs carry no dates, so these are maintained by hand.
var androidReleaseDates = map[int]string{
	7:  "2016-08-22",
	8:  "2017-08-21",
	9:  "2018-08-06",
	10: "2019-09-03",
	11: "2020-09-08",
	12: "2021-10-04",
	13: "2022-08-15",
	14: "2023-10-04",
	15: "2024-09-03",
	16: "2025-06-10",
}

var androidVersionRE = regexp.MustCompile(`android(\d+)-release`)

// AndroidGenerator implements ReleaseGenerator for Android releases.
type AndroidGenerator struct{}

// Name returns the generator's display name.
func (AndroidGenerator) Name() string { return "Android" }

// Generate discovers Android versions from googlesource release branches.
func (AndroidGenerator) Generate() ([]Entry, error) {
	body, err := FetchURL(androidRefsURL)
	if err != nil {
		return nil, err
	}

	versions := DiscoverAndroidVersions(body)
	if len(versions) == 0 {
		return nil, fmt.Errorf("no android release branches found")
	}

	var entries []Entry
	for _, major := range versions.Values() {
		released, ok := androidReleaseDates[major]
		if !ok {
			Log.Warn("Android %d: no known release date, skipping", major)
			continue
		}
		entries = append(entries, Entry{
			Platform: platform.Android.String(),
			Version:  strconv.Itoa(major),
			Codename: androidCodenames[major],
			Released: released,
		})
	}

	return entries, nil
}

// DiscoverAndroidVersions extracts supported major versions from the refs
// listing. Versions below the supported minimum are dropped.
func DiscoverAndroidVersions(refs []byte) collections.Set[int] {
	discovered := collections.NewSet[int]()
	for _, m := range androidVersionRE.FindAllSubmatch(refs, -1) {
		major, err := strconv.Atoi(string(m[1]))
		if err != nil {
			continue
		}
		discovered.Add(major)
	}

	return collections.FilterSet(discovered, func(major int) bool {
		return major >= minAndroidVersion
	})
}
