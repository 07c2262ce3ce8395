package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/harshitbisht07/Attendance-Optimization-System/internals/configs"
	"github.com/harshitbisht07/Attendance-Optimization-System/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global. Urutan penting: recover paling luar.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestIDMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware(configs.CorsAllowOrigins))
	app.Use("/api", GlobalRateLimiter(configs.RateLimitMax))
}
