package stats

import "testing"

func TestCalcAverage(t *testing.T) {
	cases := []struct {
		name string
		h    Histogram
		want float64
	}{
		{"empty", Histogram{}, 0},
		{"nil", nil, 0},
		{"single", Histogram{5: 2}, 5},
		{"extremes", Histogram{1: 1, 5: 1}, 3},
		{"rounded", Histogram{4: 2, 5: 1}, 4.33},
		{"zero counts", Histogram{3: 0}, 0},
	}
	for _, tc := range cases {
		if got := CalcAverage(tc.h); got != tc.want {
			t.Errorf("%s: CalcAverage(%v) = %v, want %v", tc.name, tc.h, got, tc.want)
		}
	}
}

func TestChartDataZeroFilled(t *testing.T) {
	for _, h := range []Histogram{nil, {}, {4: 1}, {1: 3, 5: 2}, {1: 1, 2: 1, 3: 1, 4: 1, 5: 1}} {
		bars := ChartData(h)
		if len(bars) != 5 {
			t.Fatalf("ChartData(%v): got %d entries, want 5", h, len(bars))
		}
		for i, b := range bars {
			r := i + 1
			if b.Name != string(rune('0'+r)) {
				t.Errorf("entry %d: name %q, want %d", i, b.Name, r)
			}
			if b.Count != h[r] {
				t.Errorf("entry %d: count %d, want %d", i, b.Count, h[r])
			}
			if b.Fill != RatingColors[i] {
				t.Errorf("entry %d: fill %q", i, b.Fill)
			}
		}
	}
}

func TestPieDataMatchesChartData(t *testing.T) {
	h := Histogram{2: 4, 4: 1}
	pie := PieData(h)
	bars := ChartData(h)
	if len(pie) != 5 {
		t.Fatalf("got %d slices, want 5", len(pie))
	}
	for i := range pie {
		if pie[i].Value != bars[i].Count || pie[i].Color != bars[i].Fill {
			t.Errorf("slice %d out of sync with bar: %+v vs %+v", i, pie[i], bars[i])
		}
	}
	if pie[0].Name != "1 ★" || pie[0].Value != 0 {
		t.Errorf("missing rating not zero-filled: %+v", pie[0])
	}
}

func TestSectionAndOverallAverage(t *testing.T) {
	// rata-rata dari rata-rata, bukan weighted
	if got := SectionAverage([]float64{5, 3}); got != 4 {
		t.Errorf("SectionAverage = %v, want 4", got)
	}
	if got := SectionAverage(nil); got != 0 {
		t.Errorf("SectionAverage(nil) = %v", got)
	}
	if got := OverallAverage([]float64{4, 3.5, 0}); got != 2.5 {
		t.Errorf("OverallAverage = %v, want 2.5", got)
	}
}
