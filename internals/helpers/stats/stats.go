// Package stats: perhitungan histogram rating 1..5 yang dipakai server (report)
// dan client (ReportView), tanpa dependency ke DB.
package stats

import (
	"math"
	"strconv"
)

// RatingColors: warna tetap per rating 1..5 (index = rating-1).
var RatingColors = [5]string{"#ef4444", "#f97316", "#eab308", "#84cc16", "#10b981"}

// Histogram: rating (1..5) → jumlah jawaban.
type Histogram map[int]int

type ChartEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Fill  string `json:"fill"`
}

type PieEntry struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// Round2 pembulatan 2 desimal.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalcAverage = Σ(rating×count)/Σcount, dibulatkan 2 desimal; 0 bila kosong.
func CalcAverage(h Histogram) float64 {
	total, score := 0, 0
	for rating, count := range h {
		total += count
		score += rating * count
	}
	if total == 0 {
		return 0
	}
	return Round2(float64(score) / float64(total))
}

// Total jumlah jawaban dalam histogram.
func (h Histogram) Total() int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}

// ChartData: selalu 5 bar (rating 1..5 ascending), rating kosong = 0.
func ChartData(h Histogram) []ChartEntry {
	out := make([]ChartEntry, 0, len(RatingColors))
	for r := 1; r <= len(RatingColors); r++ {
		out = append(out, ChartEntry{
			Name:  strconv.Itoa(r),
			Count: h[r],
			Fill:  RatingColors[r-1],
		})
	}
	return out
}

// PieData: 5 slice dengan urutan sama seperti ChartData.
func PieData(h Histogram) []PieEntry {
	out := make([]PieEntry, 0, len(RatingColors))
	for r := 1; r <= len(RatingColors); r++ {
		out = append(out, PieEntry{
			Name:  strconv.Itoa(r) + " ★",
			Value: h[r],
			Color: RatingColors[r-1],
		})
	}
	return out
}

// SectionAverage = rata-rata dari rata-rata tiap pertanyaan (tidak di-weight per responden).
func SectionAverage(questionAverages []float64) float64 {
	if len(questionAverages) == 0 {
		return 0
	}
	sum := 0.0
	for _, a := range questionAverages {
		sum += a
	}
	return Round2(sum / float64(len(questionAverages)))
}

// OverallAverage = rata-rata dari SectionAverage; section tanpa pertanyaan ikut dihitung sebagai 0.
func OverallAverage(sectionAverages []float64) float64 {
	return SectionAverage(sectionAverages)
}
