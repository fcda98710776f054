package middlewares

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"echomind_backend/internals/constants"
	helper "echomind_backend/internals/helpers"
)

type keyFunc func(c *fiber.Ctx) string

func byIP(c *fiber.Ctx) string { return c.IP() }

// byUser: id user dari AuthMiddleware, fallback IP kalau belum login.
func byUser(c *fiber.Ctx) string {
	if id, ok := c.Locals(constants.LocalUserID).(string); ok && id != "" {
		return "u:" + id
	}
	return "ip:" + c.IP()
}

func newLimiter(max int, exp time.Duration, key keyFunc, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:          max,
		Expiration:   exp,
		KeyGenerator: key,
		LimitReached: func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(exp.Seconds())))
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

func GlobalRateLimiter() fiber.Handler {
	return newLimiter(300, time.Minute, byIP, "❌ Too many requests. Please try again later.")
}

func LoginRateLimiter() fiber.Handler {
	return newLimiter(10, time.Minute, byIP, "❌ Too many login attempts. Please wait a moment.")
}

func RegisterRateLimiter() fiber.Handler {
	return newLimiter(5, 5*time.Minute, byIP, "❌ Too many registration attempts. Please wait a few minutes.")
}

// SubmissionRateLimiter membatasi kirim jawaban survei per student.
func SubmissionRateLimiter() fiber.Handler {
	return newLimiter(20, time.Minute, byUser, "❌ Too many survey submissions. Please slow down.")
}
