package service

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

func fakeAIService(t *testing.T, handler fiber.Handler) string {
	t.Helper()
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Post("/analyze", handler)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })
	return "http://" + ln.Addr().String()
}

func TestHTTPAnalyzer(t *testing.T) {
	var got AnalysisInput
	url := fakeAIService(t, func(c *fiber.Ctx) error {
		if c.Get(fiber.HeaderAuthorization) != "Bearer tok" {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		if err := sonic.Unmarshal(c.Body(), &got); err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}
		return c.JSON(fiber.Map{"sentiment": "positive", "count": len(got.Evaluations)})
	})

	a := NewHTTPAnalyzer(url, "tok")
	raw, err := a.Analyze(context.Background(), AnalysisInput{
		ClassroomID: 7,
		Evaluations: []AnalysisComment{{Rating: 5, Comment: "nice"}},
	})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if got.ClassroomID != 7 || len(got.Evaluations) != 1 {
		t.Fatalf("payload not forwarded: %+v", got)
	}
	var out map[string]any
	if err := sonic.Unmarshal(raw, &out); err != nil || out["sentiment"] != "positive" {
		t.Fatalf("unexpected result %s (%v)", string(raw), err)
	}
}

func TestHTTPAnalyzerErrors(t *testing.T) {
	if _, err := NewHTTPAnalyzer("", "").Analyze(context.Background(), AnalysisInput{}); !errors.Is(err, ErrAnalyzerDisabled) {
		t.Fatalf("empty base url: %v", err)
	}

	url := fakeAIService(t, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusInternalServerError).SendString("down")
	})
	if _, err := NewHTTPAnalyzer(url, "").Analyze(context.Background(), AnalysisInput{}); err == nil {
		t.Fatal("expected error on 500 from AI service")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewHTTPAnalyzer(url, "").Analyze(ctx, AnalysisInput{}); err == nil {
		t.Fatal("expected error on cancelled context")
	}
}
