package generate

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	entries := []Entry{
		{Platform: "ios", Version: "17.4", Released: "2024-03-05"},
		{Platform: "android", Version: "14", Codename: "Upside Down Cake", Released: "2023-10-04"},
		{Platform: "android", Version: "9", Codename: "Pie", Released: "2018-08-06"},
		{Platform: "ios", Version: "16.7.6", Released: "2024-03-07"},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, entries); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(records) != 5 {
		t.Fatalf("got %d records (incl. header), want 5", len(records))
	}
	if records[0][0] != "platform" || records[0][3] != "released" {
		t.Errorf("header = %v, want platform,version,codename,released", records[0])
	}

	// Sorted: android 9 < android 14 (semver, not lexicographic), ios after
	wantOrder := [][2]string{
		{"android", "9"},
		{"android", "14"},
		{"ios", "16.7.6"},
		{"ios", "17.4"},
	}
	for i, want := range wantOrder {
		rec := records[i+1]
		if rec[0] != want[0] || rec[1] != want[1] {
			t.Errorf("record %d = %s/%s, want %s/%s", i+1, rec[0], rec[1], want[0], want[1])
		}
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "platform,version,codename,released" {
		t.Errorf("empty catalog output = %q, want header only", got)
	}
}
