package echomind

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrIncompleteSurvey = errors.New("please answer every question before submitting")
	ErrNoSurveyAssigned = errors.New("no survey is assigned to this classroom")
	ErrUnknownQuestion  = errors.New("question does not belong to this survey")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
)

const (
	MinRating = 1
	MaxRating = 5
)

// SurveyForm: state pengisian survey oleh student untuk satu classroom.
type SurveyForm struct {
	client      *Client
	ClassroomID uint
	Classroom   EnrolledClassroom
	Survey      *Survey

	mu         sync.Mutex
	questions  map[uint]struct{}
	answers    map[uint]int
	submitting bool
}

// LoadSurveyForm: enrollment → tree survey → jawaban sebelumnya (pre-populate).
func LoadSurveyForm(ctx context.Context, c *Client, classroomID uint) (*SurveyForm, error) {
	if classroomID == 0 {
		return nil, ErrMissingParam
	}

	enrolled, err := c.CheckIfEnrolled(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	if enrolled.Classroom.SurveyID == nil {
		return nil, ErrNoSurveyAssigned
	}

	survey, err := c.GetSurvey(ctx, *enrolled.Classroom.SurveyID)
	if err != nil {
		return nil, err
	}

	previous, err := c.MyResponses(ctx, classroomID)
	if err != nil {
		return nil, err
	}

	f := NewSurveyForm(c, classroomID, survey)
	f.Classroom = enrolled.Classroom
	for _, r := range previous {
		// jawaban lama untuk pertanyaan yang sudah dihapus diabaikan
		_ = f.SetAnswer(r.SurveyQuestionID, r.Rating)
	}
	return f, nil
}

func NewSurveyForm(c *Client, classroomID uint, survey *Survey) *SurveyForm {
	f := &SurveyForm{
		client:      c,
		ClassroomID: classroomID,
		Survey:      survey,
		questions:   map[uint]struct{}{},
		answers:     map[uint]int{},
	}
	for _, id := range survey.QuestionIDs() {
		f.questions[id] = struct{}{}
	}
	return f
}

// SetAnswer: pilihan eksklusif 1..5 per pertanyaan (ganti nilai lama).
func (f *SurveyForm) SetAnswer(questionID uint, rating int) error {
	if rating < MinRating || rating > MaxRating {
		return ErrRatingOutOfRange
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.questions[questionID]; !ok {
		return ErrUnknownQuestion
	}
	f.answers[questionID] = rating
	return nil
}

func (f *SurveyForm) Answer(questionID uint) (int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.answers[questionID]
	return r, ok
}

func (f *SurveyForm) Answered() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.answers)
}

func (f *SurveyForm) Total() int {
	return len(f.questions)
}

// Responses diurutkan by question id.
func (f *SurveyForm) Responses() []ResponseItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]ResponseItem, 0, len(f.answers))
	for id, r := range f.answers {
		out = append(out, ResponseItem{SurveyQuestionID: id, Rating: r})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SurveyQuestionID < out[j].SurveyQuestionID })
	return out
}

// Submit: tolak lokal bila belum lengkap; selain itu tepat satu POST batch.
func (f *SurveyForm) Submit(ctx context.Context) (*SubmitResult, error) {
	if answered, total := f.Answered(), f.Total(); answered != total || total == 0 {
		return nil, fmt.Errorf("%w (%d/%d answered)", ErrIncompleteSurvey, answered, total)
	}

	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return nil, ErrBusy
	}
	f.submitting = true
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	return f.client.SubmitResponses(ctx, SubmitResponses{
		ClassroomID: f.ClassroomID,
		Responses:   f.Responses(),
	})
}
