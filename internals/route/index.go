// file: internals/route/index.go
package routes

import (
	"log"

	routeDetails "github.com/harshitbisht07/Attendance-Optimization-System/internals/route/details"

	"github.com/gofiber/fiber/v2"
)

// Options membawa dependency runtime yang dibutuhkan routes.
type Options struct {
	StaticIndex      string
	DefaultThreshold func() float64
}

func SetupRoutes(app *fiber.App, opts Options) {
	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, opts.StaticIndex)

	// ===================== API =====================
	api := app.Group("/api")

	log.Println("[INFO] Mounting Attendance routes...")
	routeDetails.AttendanceRoutes(api, opts.DefaultThreshold)
}
