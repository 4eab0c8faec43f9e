package collections

import (
	"sort"
	"testing"
)

func TestFilterMap(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3, "d": 4}

	got := FilterMap(m, func(_ string, v int) bool { return v%2 == 0 })

	want := map[string]int{"b": 2, "d": 4}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("got[%q] = %d, want %d", k, got[k], v)
		}
	}

	// Source map is untouched
	if len(m) != 4 {
		t.Errorf("source map modified, len = %d", len(m))
	}
}

func TestFilterMapByKey(t *testing.T) {
	m := map[string]string{"ios": "17.4", "android": "14", "windows": "11"}

	got := FilterMap(m, func(k string, _ string) bool { return k != "windows" })

	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if _, ok := got["windows"]; ok {
		t.Error("filtered entry still present")
	}
}

func TestFilterMapNil(t *testing.T) {
	got := FilterMap(nil, func(string, int) bool { return true })
	if got == nil {
		t.Fatal("FilterMap(nil) returned nil, want empty map")
	}
	if len(got) != 0 {
		t.Errorf("FilterMap(nil) has %d entries, want 0", len(got))
	}
}

func TestFilterSet(t *testing.T) {
	s := NewSet(1, 2, 3, 4, 5)

	got := FilterSet(s, func(e int) bool { return e > 2 })

	values := got.Values()
	sort.Ints(values)
	want := []int{3, 4, 5}
	if len(values) != len(want) {
		t.Fatalf("got %v, want %v", values, want)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Fatalf("got %v, want %v", values, want)
		}
	}

	// Source set is untouched
	if len(s) != 5 {
		t.Errorf("source set modified, len = %d", len(s))
	}
}

func TestFilterSetNil(t *testing.T) {
	got := FilterSet(nil, func(string) bool { return true })
	if got == nil {
		t.Fatal("FilterSet(nil) returned nil, want empty set")
	}
	if len(got) != 0 {
		t.Errorf("FilterSet(nil) has %d elements, want 0", len(got))
	}
}

func TestSet(t *testing.T) {
	s := NewSet("a", "b", "a")
	if len(s) != 2 {
		t.Errorf("NewSet deduplication failed, len = %d", len(s))
	}
	if !s.Contains("a") {
		t.Error("Contains(a) = false, want true")
	}
	if s.Contains("c") {
		t.Error("Contains(c) = true, want false")
	}
	s.Add("c")
	if !s.Contains("c") {
		t.Error("Contains(c) after Add = false, want true")
	}
}
