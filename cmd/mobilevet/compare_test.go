package main

import "testing"

func TestCompareWord(t *testing.T) {
	tests := []struct {
		name string
		cmp  int
		want string
	}{
		{"older", -1, "older than"},
		{"same", 0, "the same as"},
		{"newer", 1, "newer than"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compareWord(tt.cmp); got != tt.want {
				t.Errorf("compareWord(%d) = %q, want %q", tt.cmp, got, tt.want)
			}
		})
	}
}
