package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	calculatorDTO "github.com/harshitbisht07/Attendance-Optimization-System/internals/features/attendance/calculator/dto"
	calculatorService "github.com/harshitbisht07/Attendance-Optimization-System/internals/features/attendance/calculator/service"
	helper "github.com/harshitbisht07/Attendance-Optimization-System/internals/helpers"
)

const (
	msgInvalidSubjects  = "Invalid subjects format"
	msgInvalidThreshold = "Threshold must be between 0 and 100"
	msgMalformedBody    = "Invalid JSON body"
)

type CalculatorController struct {
	// DefaultThreshold dibaca per request supaya reload settings langsung berlaku.
	DefaultThreshold func() float64
}

func NewCalculatorController(defaultThreshold func() float64) *CalculatorController {
	if defaultThreshold == nil {
		defaultThreshold = func() float64 { return calculatorService.DefaultThreshold }
	}
	return &CalculatorController{DefaultThreshold: defaultThreshold}
}

// 🟡 POST /api/calculate
// Body: { "subjects": [{subject, total, present}, ...], "threshold": 75 }
// Record yang tidak valid (present > total, angka negatif) di-skip, bukan error.
func (ctrl *CalculatorController) Calculate(c *fiber.Ctx) error {
	req, err := calculatorDTO.ParseCalculateRequest(c.Body())
	if err != nil {
		log.Println("[WARN] body parser gagal:", err)
		return helper.NewAppError(fiber.StatusBadRequest, helper.KindMalformedBody, msgMalformedBody, err)
	}

	inputs, err := req.SubjectInputs()
	switch {
	case errors.Is(err, calculatorDTO.ErrInvalidSubjects):
		return helper.BadRequest(helper.KindInvalidSubjects, msgInvalidSubjects)
	case err != nil:
		log.Println("[WARN] subject record tidak bisa di-decode:", err)
		return helper.NewAppError(fiber.StatusBadRequest, helper.KindMalformedBody, calculatorDTO.ErrMalformedRecord.Error(), err)
	}

	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(err, helper.KindInvalidThreshold, msgInvalidThreshold)
	}

	threshold := req.ThresholdOr(ctrl.DefaultThreshold())
	result := calculatorService.ProcessSubjects(calculatorDTO.ToRecords(inputs), threshold)

	return c.Status(fiber.StatusOK).JSON(result)
}
