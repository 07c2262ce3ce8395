package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Validate dipakai bersama; validator.Validate aman untuk concurrent use dan men-cache struct.
var Validate = validator.New()

// ValidationError memetakan error validator.v10 ke AppError 400 dengan pesan tetap.
// Error non-validasi (mis. InvalidValidationError) dianggap bug → 500.
func ValidationError(err error, kind ErrorKind, message string) *AppError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return NewAppError(fiber.StatusInternalServerError, KindInternal, err.Error(), err)
	}
	return NewAppError(fiber.StatusBadRequest, kind, message, err)
}
