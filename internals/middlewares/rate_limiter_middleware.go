package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "github.com/harshitbisht07/Attendance-Optimization-System/internals/helpers"
)

// Global limiter: untuk semua endpoint /api, max request per IP per menit
func GlobalRateLimiter(maxPerMinute int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        maxPerMinute,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		Next: func(c *fiber.Ctx) bool {
			// health check jangan ikut dibatasi
			return c.Path() == "/api/health"
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, helper.KindRateLimited,
				"Too many requests, please try again later")
		},
	})
}
