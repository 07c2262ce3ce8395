// file: internals/helpers/json_response.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error kinds (standard shape)
=================================*/

// ErrorKind is the machine-readable error_code carried by every error response.
type ErrorKind string

const (
	KindInvalidSubjects  ErrorKind = "INVALID_SUBJECTS"
	KindInvalidThreshold ErrorKind = "INVALID_THRESHOLD"
	KindMalformedBody    ErrorKind = "MALFORMED_BODY"
	KindMethodNotAllowed ErrorKind = "METHOD_NOT_ALLOWED"
	KindNotFound         ErrorKind = "NOT_FOUND"
	KindRateLimited      ErrorKind = "RATE_LIMITED"
	KindBadRequest       ErrorKind = "BAD_REQUEST"
	KindInternal         ErrorKind = "INTERNAL_ERROR"
)

type ErrorResponse struct {
	Error     string    `json:"error"`
	ErrorCode ErrorKind `json:"error_code,omitempty"`
}

func statusToErrorKind(status int) ErrorKind {
	switch status {
	case fiber.StatusBadRequest:
		return KindBadRequest
	case fiber.StatusNotFound:
		return KindNotFound
	case fiber.StatusMethodNotAllowed:
		return KindMethodNotAllowed
	case fiber.StatusTooManyRequests:
		return KindRateLimited
	default:
		if status >= 500 {
			return KindInternal
		}
		return KindBadRequest
	}
}

// JsonError menulis {error, error_code}. kind kosong diturunkan dari status.
func JsonError(c *fiber.Ctx, status int, kind ErrorKind, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		// fallback message default dari Fiber kalau kosong
		message = fiber.NewError(status).Message
	}
	if kind == "" {
		kind = statusToErrorKind(status)
	}

	return c.Status(status).JSON(ErrorResponse{
		Error:     message,
		ErrorCode: kind,
	})
}
