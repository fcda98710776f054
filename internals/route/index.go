// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	evaluationService "echomind_backend/internals/features/school/evaluations/service"
	authMiddleware "echomind_backend/internals/middlewares/auth"
	routeDetails "echomind_backend/internals/route/details"
)

var startTime = time.Now()

// Options untuk dependency eksternal (test bisa inject analyzer palsu).
type Options struct {
	Analyzer evaluationService.Analyzer
}

func SetupRoutes(app *fiber.App, db *gorm.DB, opts ...Options) {
	startTime = time.Now()
	var opt Options
	if len(opts) > 0 {
		opt = opts[0]
	}

	BaseRoutes(app, db)

	// ===================== AUTH (public + /me, /logout) =====================
	log.Info("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PRIVATE (JWT wajib) =====================
	log.Info("[INFO] Setting up PRIVATE /api group...")
	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	routeDetails.LembagaRoutes(api, db)
	routeDetails.UserRoutes(api, db)
	routeDetails.SchoolRoutes(api, db, opt.Analyzer)
	routeDetails.SurveyRoutes(api, db)

	log.Info("[INFO] Routes ready")
}
