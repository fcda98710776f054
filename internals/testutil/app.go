package testutil

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"echomind_backend/internals/configs"
	evaluationService "echomind_backend/internals/features/school/evaluations/service"
	helper "echomind_backend/internals/helpers"
	"echomind_backend/internals/middlewares"
	routes "echomind_backend/internals/route"
)

const JWTSecret = "echomind-test-secret"

// FakeAnalyzer mengganti AI service; mencatat input terakhir.
type FakeAnalyzer struct {
	mu     sync.Mutex
	Result []byte
	Err    error
	Calls  int
	Last   evaluationService.AnalysisInput
	// Remaining: sisa waktu context saat dipanggil (0 = tanpa deadline).
	Remaining time.Duration
}

func (f *FakeAnalyzer) Analyze(ctx context.Context, in evaluationService.AnalysisInput) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	f.Last = in
	f.Remaining = 0
	if dl, ok := ctx.Deadline(); ok {
		f.Remaining = time.Until(dl)
	}
	if f.Err != nil {
		return nil, f.Err
	}
	if f.Result == nil {
		return []byte(`{"sentiment":"positive","summary":"ok"}`), nil
	}
	return f.Result, nil
}

type Env struct {
	DB       *gorm.DB
	App      *fiber.App
	Analyzer *FakeAnalyzer
}

// NewEnv: DB + app dengan middleware & routes produksi (tanpa rate limit global).
func NewEnv(t testing.TB) *Env {
	t.Helper()
	configs.JWTSecret = JWTSecret
	configs.TokenTTL = 0

	db := NewDB(t)
	analyzer := &FakeAnalyzer{}

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.FiberErrorHandler,
	})
	middlewares.SetupMiddlewares(app)
	routes.SetupRoutes(app, db, routes.Options{Analyzer: analyzer})

	return &Env{DB: db, App: app, Analyzer: analyzer}
}

// Serve menjalankan app di listener lokal (untuk test client); return base URL.
func (e *Env) Serve(t testing.TB) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go func() { _ = e.App.Listener(ln) }()
	t.Cleanup(func() { _ = e.App.Shutdown() })
	return "http://" + ln.Addr().String()
}
