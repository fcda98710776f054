package echomind_test

import (
	"testing"

	"echomind_backend/internals/clients/echomind"
	"echomind_backend/internals/helpers/stats"
)

func TestReportViewToggle(t *testing.T) {
	report := &echomind.SurveyReport{
		ClassroomID: 1,
		Survey: &echomind.SurveyReportBody{
			Sections: []echomind.SectionReport{{
				ID: 5,
				Questions: []echomind.QuestionReport{
					{ID: 1, Ratings: stats.Histogram{5: 2}},
					{ID: 2, Ratings: stats.Histogram{1: 1, 5: 1}},
				},
			}},
		},
	}
	view := echomind.NewReportView(report)

	if view.Kind() != echomind.ChartBar {
		t.Fatalf("default view = %s", view.Kind())
	}
	bars := view.Charts()
	if len(bars) != 2 || len(bars[0].Bar) != 5 || bars[0].Pie != nil {
		t.Fatalf("bar charts: %+v", bars)
	}
	if bars[0].Average != 5 || bars[1].Average != 3 {
		t.Fatalf("averages: %v %v", bars[0].Average, bars[1].Average)
	}

	if view.Toggle() != echomind.ChartPie {
		t.Fatal("toggle should switch to pie")
	}
	pies := view.Charts()
	if len(pies[1].Pie) != 5 || pies[1].Bar != nil {
		t.Fatalf("pie charts: %+v", pies[1])
	}
	for i := range pies[1].Pie {
		if pies[1].Pie[i].Value != bars[1].Bar[i].Count {
			t.Fatalf("bar and pie disagree at rating %d", i+1)
		}
	}

	if avg := view.SectionAverages()[5]; avg != 4 {
		t.Fatalf("section average = %v, want 4", avg)
	}
}

func TestReportViewWithoutSurvey(t *testing.T) {
	view := echomind.NewReportView(&echomind.SurveyReport{ClassroomID: 3})
	if view.HasSurvey() || view.Charts() != nil {
		t.Fatal("report without survey should render nothing")
	}
	view.SetKind("donut")
	if view.Kind() != echomind.ChartBar {
		t.Fatalf("unknown kind accepted: %s", view.Kind())
	}
}
