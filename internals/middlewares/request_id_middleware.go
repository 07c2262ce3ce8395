package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// RequestIDMiddleware: pakai X-Request-ID dari client kalau UUID valid, selain itu generate baru.
// Id disimpan di c.Locals("reqid") dan dikirim balik di header response.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// header fasthttp hanya valid selama request → copy sebelum disimpan
		id := utils.CopyString(c.Get(HeaderRequestID))
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(HeaderRequestID, id)
		c.Locals("reqid", id)
		return c.Next()
	}
}
