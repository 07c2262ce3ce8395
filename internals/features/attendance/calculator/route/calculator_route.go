package routes

import (
	calculatorController "github.com/harshitbisht07/Attendance-Optimization-System/internals/features/attendance/calculator/controller"

	"github.com/gofiber/fiber/v2"
)

func CalculatorRoutes(router fiber.Router, defaultThreshold func() float64) {
	ctrl := calculatorController.NewCalculatorController(defaultThreshold)

	router.Post("/calculate", ctrl.Calculate)
}
