package output

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestReleaseListFormatText(t *testing.T) {
	list := &ReleaseList{
		Entries: []ReleaseEntry{
			{Platform: "ios", Version: "17.4", Released: "2024-03-05"},
			{Platform: "android", Version: "14", Codename: "Upside Down Cake", Released: "2023-10-04"},
			{Platform: "android", Version: "9", Codename: "Pie", Released: "2018-08-06"},
		},
	}

	got := list.FormatText()

	if !strings.Contains(got, "PLATFORM") || !strings.Contains(got, "RELEASED") {
		t.Errorf("missing header in output:\n%s", got)
	}

	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), got)
	}

	// Sorted: android before ios, and android 9 before android 14 (semver,
	// not lexicographic).
	if !strings.HasPrefix(lines[1], "android") || !strings.Contains(lines[1], "9") {
		t.Errorf("first row should be android 9, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "14") {
		t.Errorf("second row should be android 14, got %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "ios") {
		t.Errorf("last row should be ios, got %q", lines[3])
	}

	// Empty codename rendered as dash
	if !strings.Contains(lines[3], "-") {
		t.Errorf("empty codename should render as -, got %q", lines[3])
	}
}

func TestReleaseListFormatTextEmpty(t *testing.T) {
	list := &ReleaseList{}
	if got := list.FormatText(); got != "" {
		t.Errorf("empty list text = %q, want empty string", got)
	}
}

func TestReleaseListFormatJSON(t *testing.T) {
	list := &ReleaseList{
		Entries: []ReleaseEntry{
			{Platform: "ios", Version: "17.4", Released: "2024-03-05"},
		},
	}

	data, err := list.FormatJSON()
	if err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var decoded []ReleaseEntry
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Version != "17.4" {
		t.Errorf("decoded = %v, want single 17.4 entry", decoded)
	}
}

func TestReleaseListFormatJSONEmpty(t *testing.T) {
	list := &ReleaseList{}
	data, err := list.FormatJSON()
	if err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("empty list JSON = %q, want []", data)
	}
}

func TestFormatOutput(t *testing.T) {
	list := &ReleaseList{
		Entries: []ReleaseEntry{{Platform: "ios", Version: "17.4", Released: "2024-03-05"}},
	}

	text, err := FormatOutput(list, FormatText)
	if err != nil {
		t.Fatalf("FormatOutput(text): %v", err)
	}
	if !strings.Contains(text, "PLATFORM") {
		t.Errorf("text output missing header:\n%s", text)
	}

	jsonOut, err := FormatOutput(list, FormatJSON)
	if err != nil {
		t.Fatalf("FormatOutput(json): %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(jsonOut), "[") {
		t.Errorf("json output should be an array, got:\n%s", jsonOut)
	}
}
