package details

import (
	CalculatorRoutes "github.com/harshitbisht07/Attendance-Optimization-System/internals/features/attendance/calculator/route"

	"github.com/gofiber/fiber/v2"
)

func AttendanceRoutes(r fiber.Router, defaultThreshold func() float64) {
	CalculatorRoutes.CalculatorRoutes(r, defaultThreshold)
}
