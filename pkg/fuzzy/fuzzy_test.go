package fuzzy

import "testing"

func TestLevenshteinDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"work", "work", 0},
		{"work", "wrok", 2},
		{"kitten", "sitting", 3},
		{"", "abc", 3},
		{"Work", "work", 0}, // case-insensitive
	}

	for _, c := range cases {
		if got := LevenshteinDistance(c.a, c.b); got != c.want {
			t.Fatalf("LevenshteinDistance(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestFuzzyMatch(t *testing.T) {
	if !FuzzyMatch("work", "A long day at work", 1) {
		t.Fatal("exact substring should match")
	}
	if !FuzzyMatch("wrk", "work stress", 1) {
		t.Fatal("single-typo word should match with threshold 1")
	}
	if !FuzzyMatch("grat", "gratitude journal", 2) {
		t.Fatal("prefix should match")
	}
	if FuzzyMatch("running", "family dinner", 2) {
		t.Fatal("unrelated words should not match")
	}
}

func TestThreshold(t *testing.T) {
	if Threshold("ab") != 1 {
		t.Fatal("short queries get threshold 1")
	}
	if Threshold("hello") != 2 {
		t.Fatal("medium queries get threshold 2")
	}
	if Threshold("gratitude") != 3 {
		t.Fatal("long queries get threshold 3")
	}
}
