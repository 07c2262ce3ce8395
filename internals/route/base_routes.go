package routes

import (
	"github.com/gofiber/fiber/v2"
)

func BaseRoutes(app *fiber.App, staticIndex string) {
	// front-end single page
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendFile(staticIndex)
	})

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
		})
	})
}
