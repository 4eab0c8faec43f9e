package generate

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ivoronin/mobilevet/internal/catalog"
	"github.com/ivoronin/mobilevet/internal/platform"
)

const appleReleasesURL = "https://support.apple.com/en-us/100100"

// appleDateFormat is the date format used on Apple's security releases page.
const appleDateFormat = "02 Jan 2006"

var iosVersionRE = regexp.MustCompile(`\biOS\s+(\d+(?:\.\d+)*)\b`)

// AppleGenerator implements ReleaseGenerator for iOS releases.
type AppleGenerator struct{}

// Name returns the generator's display name.
func (AppleGenerator) Name() string { return "Apple" }

// Generate scrapes Apple's security releases page for iOS versions and
// release dates.
func (AppleGenerator) Generate() ([]Entry, error) {
	body, err := FetchURL(appleReleasesURL)
	if err != nil {
		return nil, err
	}
	return ParseAppleReleases(body)
}

// ParseAppleReleases extracts iOS release entries from the security
// releases page HTML. The page lists one row per release, newest first;
// only the first occurrence of each version is kept.
func ParseAppleReleases(body []byte) ([]Entry, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse apple releases page: %w", err)
	}

	seen := make(map[string]bool)
	var entries []Entry

	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}

		name := strings.TrimSpace(cells.First().Text())
		m := iosVersionRE.FindStringSubmatch(name)
		if m == nil {
			return
		}
		ver := m[1]
		if seen[ver] {
			return
		}

		dateText := strings.TrimSpace(cells.Last().Text())
		date, err := time.Parse(appleDateFormat, dateText)
		if err != nil {
			Log.Warn("iOS %s: unparsable release date %q", ver, dateText)
			return
		}

		seen[ver] = true
		entries = append(entries, Entry{
			Platform: platform.IOS.String(),
			Version:  ver,
			Released: date.Format(catalog.DateFormat),
		})
	})

	if len(entries) == 0 {
		return nil, fmt.Errorf("no iOS releases found on page")
	}

	return entries, nil
}
