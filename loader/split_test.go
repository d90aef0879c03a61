package loader

import (
	"testing"
)

func TestParseRatios(t *testing.T) {
	r, err := ParseRatios("8:1:1")
	if err != nil {
		t.Fatal(err)
	}
	if r[0] != 0.8 || r[1] != 0.1 || r[2] != 0.1 {
		t.Errorf("got %v, want [0.8 0.1 0.1]", r)
	}

	// Unnormalized inputs must be scaled to sum to 1.
	r, err = ParseRatios("4:3:3")
	if err != nil {
		t.Fatal(err)
	}
	if sum := r[0] + r[1] + r[2]; sum < 0.999 || sum > 1.001 {
		t.Errorf("ratios %v sum to %v, want 1", r, sum)
	}

	for _, bad := range []string{"", "1:1", "1:1:1:1", "a:b:c", "0:0:0", "-1:1:1"} {
		if _, err := ParseRatios(bad); err == nil {
			t.Errorf("ParseRatios(%q): expected an error", bad)
		}
	}
}

func TestSplitIndicesDisjoint(t *testing.T) {
	ratios := [3]float64{0.8, 0.1, 0.1}
	train, val, test := SplitIndices(100, ratios, 42)

	if len(train) != 80 || len(val) != 10 || len(test) != 10 {
		t.Fatalf("got sizes %d/%d/%d, want 80/10/10", len(train), len(val), len(test))
	}

	seen := make(map[int]bool)
	for _, set := range [][]int{train, val, test} {
		for _, idx := range set {
			if seen[idx] {
				t.Fatalf("index %d appears in more than one set", idx)
			}
			seen[idx] = true
		}
	}
	if len(seen) != 100 {
		t.Errorf("sets cover %d indices, want 100", len(seen))
	}
}

func TestSplitIndicesDeterministic(t *testing.T) {
	ratios := [3]float64{0.6, 0.2, 0.2}
	a1, b1, c1 := SplitIndices(50, ratios, 7)
	a2, b2, c2 := SplitIndices(50, ratios, 7)

	for i := range a1 {
		if a1[i] != a2[i] {
			t.Fatal("train sets differ for the same seed")
		}
	}
	for i := range b1 {
		if b1[i] != b2[i] {
			t.Fatal("val sets differ for the same seed")
		}
	}
	for i := range c1 {
		if c1[i] != c2[i] {
			t.Fatal("test sets differ for the same seed")
		}
	}
}

func TestExtend(t *testing.T) {
	got := Extend([]int{3, 1, 2}, 7)
	want := []int{3, 1, 2, 3, 1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got length %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d = %d, want %d", i, got[i], want[i])
		}
	}

	// Already long enough: unchanged.
	if got := Extend([]int{1, 2, 3}, 2); len(got) != 3 {
		t.Errorf("got length %d, want 3", len(got))
	}
	if got := Extend(nil, 5); got != nil {
		t.Errorf("extending an empty set should stay empty, got %v", got)
	}
}
