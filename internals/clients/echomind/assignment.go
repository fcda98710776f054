package echomind

import (
	"context"
	"fmt"
	"sync"
)

type AssignmentViewKind int

const (
	AssignmentSelector AssignmentViewKind = iota + 1
	AssignmentBound
)

// AssignmentView: Selector (pilih survey) atau Bound (read-only + link report), tidak pernah keduanya.
type AssignmentView struct {
	Kind       AssignmentViewKind
	Options    []SurveySummary
	Bound      *Survey
	ReportPath string
}

type AssignmentPanel struct {
	client      *Client
	ClassroomID uint

	mu        sync.Mutex
	view      AssignmentView
	assigning bool
}

func NewAssignmentPanel(c *Client, classroomID uint) *AssignmentPanel {
	return &AssignmentPanel{client: c, ClassroomID: classroomID}
}

func (p *AssignmentPanel) View() AssignmentView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.view
}

// Load: check-survey lalu branch; daftar survey hanya diambil untuk selector.
func (p *AssignmentPanel) Load(ctx context.Context) (AssignmentView, error) {
	check, err := p.client.CheckSurvey(ctx, p.ClassroomID)
	if err != nil {
		return p.View(), err
	}

	var next AssignmentView
	if check.HasSurvey && check.Survey != nil {
		next = AssignmentView{
			Kind:       AssignmentBound,
			Bound:      check.Survey,
			ReportPath: fmt.Sprintf("/api/classrooms/%d/survey-report", p.ClassroomID),
		}
	} else {
		options, err := p.client.ListSurveys(ctx, 1, 100)
		if err != nil {
			return p.View(), err
		}
		next = AssignmentView{Kind: AssignmentSelector, Options: options}
	}

	p.mu.Lock()
	p.view = next
	p.mu.Unlock()
	return next, nil
}

// Assign mengirim assignment lalu Load ulang (state tidak di-flip lokal).
func (p *AssignmentPanel) Assign(ctx context.Context, surveyID uint) (AssignmentView, error) {
	if surveyID == 0 {
		return p.View(), &FormError{Field: "survey_id", Message: "select a survey first"}
	}

	p.mu.Lock()
	if p.assigning {
		p.mu.Unlock()
		return p.view, ErrBusy
	}
	p.assigning = true
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		p.assigning = false
		p.mu.Unlock()
	}()

	if err := p.client.AssignSurvey(ctx, p.ClassroomID, surveyID); err != nil {
		return p.View(), err
	}
	return p.Load(ctx)
}
