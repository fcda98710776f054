package service

import "testing"

func TestDefaultGrader(t *testing.T) {
	g := MustDefaultGrader()
	cases := map[float64]string{
		5:    "Excellent",
		4.5:  "Excellent",
		4.49: "Very Good",
		4.0:  "Very Good",
		3.5:  "Good",
		3.2:  "Average",
		2.99: "Poor",
		0:    "Poor",
	}
	for avg, want := range cases {
		if got := g.Grade(avg); got != want {
			t.Errorf("Grade(%v) = %q, want %q", avg, got, want)
		}
	}
}

func TestNewQualityGraderRejectsBadRule(t *testing.T) {
	if _, err := NewQualityGrader([]QualityRule{{Label: "x", When: "average >"}}); err == nil {
		t.Fatal("expected compile error")
	}
	if _, err := NewQualityGrader([]QualityRule{{Label: "x", When: "average + 1"}}); err == nil {
		t.Fatal("expected non-bool rule to be rejected")
	}
}
