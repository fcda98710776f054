package echomind

import (
	"context"
	"errors"
	"strings"
	"sync"
)

type SectionsState int

const (
	SectionsIdle SectionsState = iota
	SectionsLoaded
	SectionsEmpty
	SectionsNotFound
)

func (s SectionsState) String() string {
	switch s {
	case SectionsLoaded:
		return "loaded"
	case SectionsEmpty:
		return "empty"
	case SectionsNotFound:
		return "not_found"
	default:
		return "idle"
	}
}

// SectionsView: 404 (survey tidak ada) ≠ 200 + [] (belum ada section).
type SectionsView struct {
	State    SectionsState
	Sections []Section
}

/* ===================== DIALOG STATE ===================== */

type DialogKind int

const (
	DialogClosed DialogKind = iota
	DialogCreating
	DialogEditing
	DialogDeleting
)

// DialogState = Closed | Creating | Editing(row) | Deleting(row), satu per list.
type DialogState struct {
	Kind  DialogKind
	RowID uint
}

func Closed() DialogState { return DialogState{Kind: DialogClosed} }

func Creating() DialogState { return DialogState{Kind: DialogCreating} }

func Editing(rowID uint) DialogState { return DialogState{Kind: DialogEditing, RowID: rowID} }

func Deleting(rowID uint) DialogState { return DialogState{Kind: DialogDeleting, RowID: rowID} }

func (d DialogState) IsOpen() bool { return d.Kind != DialogClosed }

func (d DialogState) IsEditing(rowID uint) bool {
	return d.Kind == DialogEditing && d.RowID == rowID
}

func (d DialogState) IsDeleting(rowID uint) bool {
	return d.Kind == DialogDeleting && d.RowID == rowID
}

var (
	ErrNotConfirmed  = errors.New("delete must be confirmed first")
	ErrDialogClosed  = errors.New("no dialog is open")
	ErrUnknownRow    = errors.New("row not found in current view")
	ErrDialogPending = errors.New("another dialog is already open")
)

// FormError = validasi lokal, tidak ada request yang dikirim.
type FormError struct {
	Field   string
	Message string
}

func (e *FormError) Error() string { return e.Field + ": " + e.Message }

type SectionForm struct {
	Title       string
	Description *string
}

type QuestionForm struct {
	SectionID    uint
	QuestionText string
}

/* ===================== EDITOR ===================== */

// SurveyEditor: authoring section & question untuk satu survey.
// Setiap mutasi selesai → fetch ulang tree (tanpa patch lokal).
type SurveyEditor struct {
	client   *Client
	SurveyID uint

	mu             sync.Mutex
	view           SectionsView
	sectionDialog  DialogState
	questionDialog DialogState
	questionForm   QuestionForm
	busy           bool
}

func NewSurveyEditor(c *Client, surveyID uint) *SurveyEditor {
	return &SurveyEditor{client: c, SurveyID: surveyID}
}

func (e *SurveyEditor) View() SectionsView {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.view
}

func (e *SurveyEditor) SectionDialog() DialogState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sectionDialog
}

func (e *SurveyEditor) QuestionDialog() DialogState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.questionDialog
}

func (e *SurveyEditor) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.busy
}

// FetchSections memuat ulang section; 404 menjadi state SectionsNotFound (bukan error).
func (e *SurveyEditor) FetchSections(ctx context.Context) (SectionsView, error) {
	if e.SurveyID == 0 {
		return SectionsView{}, ErrMissingParam
	}

	sections, err := e.client.ListSections(ctx, e.SurveyID)
	var next SectionsView
	switch {
	case IsNotFound(err):
		next = SectionsView{State: SectionsNotFound}
	case err != nil:
		return e.View(), err
	case len(sections) == 0:
		next = SectionsView{State: SectionsEmpty, Sections: []Section{}}
	default:
		next = SectionsView{State: SectionsLoaded, Sections: sections}
	}

	e.mu.Lock()
	e.view = next
	e.mu.Unlock()
	return next, nil
}

func (e *SurveyEditor) findSection(id uint) (Section, bool) {
	for _, s := range e.view.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

func (e *SurveyEditor) findQuestion(id uint) (Question, bool) {
	for _, s := range e.view.Sections {
		for _, q := range s.Questions {
			if q.ID == id {
				return q, true
			}
		}
	}
	return Question{}, false
}

/* ---------- section dialog ---------- */

func (e *SurveyEditor) OpenCreateSection() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sectionDialog.IsOpen() {
		return ErrDialogPending
	}
	e.sectionDialog = Creating()
	return nil
}

// OpenEditSection membuka dialog edit dan mengembalikan form berisi nilai row saat ini.
func (e *SurveyEditor) OpenEditSection(sectionID uint) (SectionForm, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sectionDialog.IsOpen() {
		return SectionForm{}, ErrDialogPending
	}
	sec, ok := e.findSection(sectionID)
	if !ok {
		return SectionForm{}, ErrUnknownRow
	}
	e.sectionDialog = Editing(sectionID)
	return SectionForm{Title: sec.Title, Description: sec.Description}, nil
}

func (e *SurveyEditor) OpenDeleteSection(sectionID uint) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sectionDialog.IsOpen() {
		return ErrDialogPending
	}
	if _, ok := e.findSection(sectionID); !ok {
		return ErrUnknownRow
	}
	e.sectionDialog = Deleting(sectionID)
	return nil
}

func (e *SurveyEditor) CloseSectionDialog() {
	e.mu.Lock()
	e.sectionDialog = Closed()
	e.mu.Unlock()
}

// SubmitSection menjalankan create/update sesuai dialog yang terbuka.
func (e *SurveyEditor) SubmitSection(ctx context.Context, form SectionForm) error {
	form.Title = strings.TrimSpace(form.Title)
	if form.Title == "" {
		return &FormError{Field: "title", Message: "title is required"}
	}

	dialog := e.SectionDialog()
	var call func(context.Context) error
	switch dialog.Kind {
	case DialogCreating:
		call = func(ctx context.Context) error {
			_, err := e.client.CreateSection(ctx, e.SurveyID, form.Title, form.Description)
			return err
		}
	case DialogEditing:
		call = func(ctx context.Context) error {
			return e.client.UpdateSection(ctx, dialog.RowID, form.Title, form.Description)
		}
	default:
		return ErrDialogClosed
	}
	return e.mutate(ctx, call, func() { e.sectionDialog = Closed() })
}

// ConfirmDeleteSection hanya jalan bila dialog Deleting(sectionID) sedang terbuka.
func (e *SurveyEditor) ConfirmDeleteSection(ctx context.Context, sectionID uint) error {
	if !e.SectionDialog().IsDeleting(sectionID) {
		return ErrNotConfirmed
	}
	return e.mutate(ctx, func(ctx context.Context) error {
		return e.client.DeleteSection(ctx, sectionID)
	}, func() { e.sectionDialog = Closed() })
}

/* ---------- question dialog ---------- */

func (e *SurveyEditor) OpenCreateQuestion(sectionID uint) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.questionDialog.IsOpen() {
		return ErrDialogPending
	}
	if _, ok := e.findSection(sectionID); !ok {
		return ErrUnknownRow
	}
	e.questionDialog = Creating()
	e.questionForm = QuestionForm{SectionID: sectionID}
	return nil
}

func (e *SurveyEditor) OpenEditQuestion(questionID uint) (QuestionForm, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.questionDialog.IsOpen() {
		return QuestionForm{}, ErrDialogPending
	}
	q, ok := e.findQuestion(questionID)
	if !ok {
		return QuestionForm{}, ErrUnknownRow
	}
	e.questionDialog = Editing(questionID)
	e.questionForm = QuestionForm{SectionID: q.SectionID, QuestionText: q.QuestionText}
	return e.questionForm, nil
}

func (e *SurveyEditor) OpenDeleteQuestion(questionID uint) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.questionDialog.IsOpen() {
		return ErrDialogPending
	}
	if _, ok := e.findQuestion(questionID); !ok {
		return ErrUnknownRow
	}
	e.questionDialog = Deleting(questionID)
	return nil
}

func (e *SurveyEditor) CloseQuestionDialog() {
	e.mu.Lock()
	e.questionDialog = Closed()
	e.questionForm = QuestionForm{}
	e.mu.Unlock()
}

func (e *SurveyEditor) SubmitQuestion(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return &FormError{Field: "question_text", Message: "question text is required"}
	}

	e.mu.Lock()
	dialog, sectionID := e.questionDialog, e.questionForm.SectionID
	e.mu.Unlock()

	var call func(context.Context) error
	switch dialog.Kind {
	case DialogCreating:
		call = func(ctx context.Context) error {
			_, err := e.client.CreateQuestion(ctx, sectionID, text)
			return err
		}
	case DialogEditing:
		call = func(ctx context.Context) error {
			return e.client.UpdateQuestion(ctx, dialog.RowID, text)
		}
	default:
		return ErrDialogClosed
	}
	return e.mutate(ctx, call, func() {
		e.questionDialog = Closed()
		e.questionForm = QuestionForm{}
	})
}

func (e *SurveyEditor) ConfirmDeleteQuestion(ctx context.Context, questionID uint) error {
	if !e.QuestionDialog().IsDeleting(questionID) {
		return ErrNotConfirmed
	}
	return e.mutate(ctx, func(ctx context.Context) error {
		return e.client.DeleteQuestion(ctx, questionID)
	}, func() {
		e.questionDialog = Closed()
		e.questionForm = QuestionForm{}
	})
}

// mutate: satu mutasi in-flight; sukses → tutup dialog; selalu fetch ulang tree.
func (e *SurveyEditor) mutate(ctx context.Context, call func(context.Context) error, onSuccess func()) error {
	e.mu.Lock()
	if e.busy {
		e.mu.Unlock()
		return ErrBusy
	}
	e.busy = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.busy = false
		e.mu.Unlock()
	}()

	if err := call(ctx); err != nil {
		// dialog tetap terbuka supaya user bisa retry manual
		if _, ferr := e.FetchSections(ctx); ferr != nil {
			return errors.Join(err, ferr)
		}
		return err
	}

	e.mu.Lock()
	onSuccess()
	e.mu.Unlock()

	_, err := e.FetchSections(ctx)
	return err
}
