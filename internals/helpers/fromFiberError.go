package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// AppError membawa status HTTP + kind supaya handler cukup `return err`.
type AppError struct {
	Status  int
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewAppError(status int, kind ErrorKind, message string, cause error) *AppError {
	return &AppError{Status: status, Kind: kind, Message: message, Err: cause}
}

func BadRequest(kind ErrorKind, message string) *AppError {
	return NewAppError(fiber.StatusBadRequest, kind, message, nil)
}

// FromFiberError mengubah error (AppError, *fiber.Error, atau error biasa)
// menjadi response JSON konsisten via JsonError.
// Selain dua tipe itu, fallback ke 500 dengan pesan asli.
func FromFiberError(c *fiber.Ctx, err error) error {
	var ae *AppError
	if errors.As(err, &ae) {
		return JsonError(c, ae.Status, ae.Kind, ae.Message)
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, "", fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, KindInternal, err.Error())
}

// ErrorHandler dipasang di fiber.Config; semua error dari handler & middleware lewat sini.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ae *AppError
	var fe *fiber.Error
	switch {
	case errors.As(err, &ae) && ae.Status < fiber.StatusInternalServerError:
	case errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError:
	default:
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	}
	return FromFiberError(c, err)
}
