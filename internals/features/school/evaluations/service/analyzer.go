// internals/features/school/evaluations/service/analyzer.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

var ErrAnalyzerDisabled = errors.New("AI analysis service is not configured")

// AnalysisInput = payload yang dikirim ke AI service.
type AnalysisInput struct {
	ClassroomID   uint              `json:"classroom_id"`
	ClassroomName string            `json:"classroom_name"`
	Evaluations   []AnalysisComment `json:"evaluations"`
}

type AnalysisComment struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Analyzer = kolaborator eksternal (sentiment/AI). Hasil dikembalikan apa adanya (JSON).
type Analyzer interface {
	Analyze(ctx context.Context, in AnalysisInput) ([]byte, error)
}

// HTTPAnalyzer memanggil AI service lewat POST {BaseURL}/analyze.
type HTTPAnalyzer struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

func NewHTTPAnalyzer(baseURL, token string) *HTTPAnalyzer {
	return &HTTPAnalyzer{BaseURL: baseURL, Token: token, Timeout: 30 * time.Second}
}

func (h *HTTPAnalyzer) Analyze(ctx context.Context, in AnalysisInput) ([]byte, error) {
	if h == nil || h.BaseURL == "" {
		return nil, ErrAnalyzerDisabled
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timeout := h.Timeout
	if dl, ok := ctx.Deadline(); ok {
		if remain := time.Until(dl); remain < timeout {
			timeout = remain
		}
	}
	if timeout <= 0 {
		return nil, context.DeadlineExceeded
	}

	url := h.BaseURL + "/analyze"
	a := fiber.Post(url)
	if h.Token != "" {
		a.Set("Authorization", "Bearer "+h.Token)
	}
	a.JSONEncoder(sonic.Marshal).JSON(in).Timeout(timeout)

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("gagal mengirim request analisis: %w", errors.Join(errs...))
	}
	if code >= 300 {
		log.WithFields(log.Fields{"status": code, "url": url}).Warn("AI service menolak request")
		return nil, fmt.Errorf("analisis gagal status %d: %s", code, string(body))
	}
	if !sonic.Valid(body) {
		return nil, fmt.Errorf("analisis mengembalikan JSON tidak valid")
	}
	return body, nil
}
