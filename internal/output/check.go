package output

import (
	"encoding/json"
	"fmt"
)

// CheckReport implements Formatter for requirement check results.
type CheckReport struct {
	Platform   string `json:"platform"`
	OSVersion  string `json:"os_version"`
	MinVersion string `json:"min_version"`
	Satisfied  bool   `json:"satisfied"`
}

// FormatText returns a single-line PASS/FAIL verdict.
func (r *CheckReport) FormatText() string {
	verdict := "FAIL"
	if r.Satisfied {
		verdict = "PASS"
	}
	return fmt.Sprintf("%s: %s %s (minimum %s)", verdict, r.Platform, r.OSVersion, r.MinVersion)
}

// FormatJSON returns the report as a JSON object.
func (r *CheckReport) FormatJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
