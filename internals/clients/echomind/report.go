package echomind

import (
	"context"
	"sync"

	"echomind_backend/internals/helpers/stats"
)

type ChartKind string

const (
	ChartBar ChartKind = "bar"
	ChartPie ChartKind = "pie"
)

// QuestionChart: salah satu Bar / Pie terisi sesuai view aktif.
type QuestionChart struct {
	QuestionID uint
	Text       string
	Average    float64
	Bar        []stats.ChartEntry
	Pie        []stats.PieEntry
}

// ReportView: satu toggle view untuk bar & pie dari histogram yang sama.
type ReportView struct {
	Report *SurveyReport

	mu   sync.Mutex
	view ChartKind
}

func FetchReport(ctx context.Context, c *Client, classroomID uint) (*ReportView, error) {
	r, err := c.SurveyReport(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	return NewReportView(r), nil
}

func NewReportView(r *SurveyReport) *ReportView {
	return &ReportView{Report: r, view: ChartBar}
}

func (v *ReportView) Kind() ChartKind {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.view
}

func (v *ReportView) SetKind(k ChartKind) {
	if k != ChartBar && k != ChartPie {
		return
	}
	v.mu.Lock()
	v.view = k
	v.mu.Unlock()
}

func (v *ReportView) Toggle() ChartKind {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.view == ChartPie {
		v.view = ChartBar
	} else {
		v.view = ChartPie
	}
	return v.view
}

// HasSurvey false bila classroom belum punya survey (report.survey = null).
func (v *ReportView) HasSurvey() bool {
	return v.Report != nil && v.Report.Survey != nil
}

// Charts menghasilkan data chart per pertanyaan (urutan section → question).
func (v *ReportView) Charts() []QuestionChart {
	if !v.HasSurvey() {
		return nil
	}
	kind := v.Kind()

	var out []QuestionChart
	for _, sec := range v.Report.Survey.Sections {
		for _, q := range sec.Questions {
			qc := QuestionChart{
				QuestionID: q.ID,
				Text:       q.Text,
				Average:    stats.CalcAverage(q.Ratings),
			}
			if kind == ChartPie {
				qc.Pie = stats.PieData(q.Ratings)
			} else {
				qc.Bar = stats.ChartData(q.Ratings)
			}
			out = append(out, qc)
		}
	}
	return out
}

// SectionAverages dihitung ulang di client (average-of-averages, sama dengan server).
func (v *ReportView) SectionAverages() map[uint]float64 {
	out := map[uint]float64{}
	if !v.HasSurvey() {
		return out
	}
	for _, sec := range v.Report.Survey.Sections {
		avgs := make([]float64, 0, len(sec.Questions))
		for _, q := range sec.Questions {
			avgs = append(avgs, stats.CalcAverage(q.Ratings))
		}
		out[sec.ID] = stats.SectionAverage(avgs)
	}
	return out
}
