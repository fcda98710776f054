package echomind_test

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"echomind_backend/internals/clients/echomind"
)

// countingBackend: backend palsu yang menghitung POST /api/survey-responses.
type countingBackend struct {
	posts atomic.Int32
	last  echomind.SubmitResponses
}

func (b *countingBackend) start(t *testing.T) string {
	t.Helper()
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Post("/api/survey-responses", func(c *fiber.Ctx) error {
		b.posts.Add(1)
		if err := sonic.Unmarshal(c.Body(), &b.last); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "bad body"})
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "created",
			"data":    fiber.Map{"classroom_id": b.last.ClassroomID, "saved": len(b.last.Responses)},
		})
	})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })
	return "http://" + ln.Addr().String()
}

func sampleSurvey() *echomind.Survey {
	return &echomind.Survey{
		ID:    1,
		Title: "Eval",
		Sections: []echomind.Section{
			{ID: 1, Title: "A", Questions: []echomind.Question{{ID: 30, SectionID: 1}, {ID: 10, SectionID: 1}}},
			{ID: 2, Title: "B", Questions: []echomind.Question{{ID: 20, SectionID: 2}}},
		},
	}
}

func TestSubmitIncompleteMakesNoRequest(t *testing.T) {
	backend := &countingBackend{}
	client := echomind.New(backend.start(t))
	form := echomind.NewSurveyForm(client, 42, sampleSurvey())

	if err := form.SetAnswer(10, 4); err != nil {
		t.Fatalf("set answer: %v", err)
	}
	if err := form.SetAnswer(20, 5); err != nil {
		t.Fatalf("set answer: %v", err)
	}

	_, err := form.Submit(context.Background())
	if !errors.Is(err, echomind.ErrIncompleteSurvey) {
		t.Fatalf("want ErrIncompleteSurvey, got %v", err)
	}
	if n := backend.posts.Load(); n != 0 {
		t.Fatalf("incomplete submit issued %d requests", n)
	}
}

// Survey tanpa pertanyaan tidak boleh dikirim sebagai batch kosong.
func TestSubmitEmptySurveyMakesNoRequest(t *testing.T) {
	backend := &countingBackend{}
	client := echomind.New(backend.start(t))
	form := echomind.NewSurveyForm(client, 42, &echomind.Survey{ID: 1, Title: "Kosong"})

	if form.Total() != 0 {
		t.Fatalf("want 0 questions, got %d", form.Total())
	}
	_, err := form.Submit(context.Background())
	if !errors.Is(err, echomind.ErrIncompleteSurvey) {
		t.Fatalf("want ErrIncompleteSurvey, got %v", err)
	}
	if n := backend.posts.Load(); n != 0 {
		t.Fatalf("empty submit issued %d requests", n)
	}
}

func TestSubmitCompleteSendsOneBatch(t *testing.T) {
	backend := &countingBackend{}
	client := echomind.New(backend.start(t))
	form := echomind.NewSurveyForm(client, 42, sampleSurvey())

	for id, r := range map[uint]int{30: 1, 10: 4, 20: 5} {
		if err := form.SetAnswer(id, r); err != nil {
			t.Fatalf("set answer %d: %v", id, err)
		}
	}
	// pilihan eksklusif: nilai terakhir menang
	_ = form.SetAnswer(30, 2)

	res, err := form.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if n := backend.posts.Load(); n != 1 {
		t.Fatalf("posts = %d, want 1", n)
	}
	if res.Saved != form.Total() || len(backend.last.Responses) != form.Total() {
		t.Fatalf("batch size %d, want %d", len(backend.last.Responses), form.Total())
	}
	if backend.last.ClassroomID != 42 {
		t.Fatalf("classroom_id = %d", backend.last.ClassroomID)
	}
	want := []echomind.ResponseItem{{SurveyQuestionID: 10, Rating: 4}, {SurveyQuestionID: 20, Rating: 5}, {SurveyQuestionID: 30, Rating: 2}}
	for i, w := range want {
		if backend.last.Responses[i] != w {
			t.Fatalf("responses[%d] = %+v, want %+v", i, backend.last.Responses[i], w)
		}
	}
}

func TestSetAnswerGuards(t *testing.T) {
	form := echomind.NewSurveyForm(echomind.New("http://unused"), 1, sampleSurvey())

	if err := form.SetAnswer(10, 0); !errors.Is(err, echomind.ErrRatingOutOfRange) {
		t.Fatalf("rating 0: %v", err)
	}
	if err := form.SetAnswer(10, 6); !errors.Is(err, echomind.ErrRatingOutOfRange) {
		t.Fatalf("rating 6: %v", err)
	}
	if err := form.SetAnswer(99, 3); !errors.Is(err, echomind.ErrUnknownQuestion) {
		t.Fatalf("foreign question: %v", err)
	}
	if form.Answered() != 0 || form.Total() != 3 {
		t.Fatalf("answered=%d total=%d", form.Answered(), form.Total())
	}
}

func TestLoadSurveyFormMissingParam(t *testing.T) {
	if _, err := echomind.LoadSurveyForm(context.Background(), echomind.New("http://unused"), 0); !errors.Is(err, echomind.ErrMissingParam) {
		t.Fatalf("want ErrMissingParam, got %v", err)
	}
}
