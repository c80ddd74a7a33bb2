// FILE: internal/pkg/serverutils/apperror.go
package serverutils

import "github.com/gofiber/fiber/v2"

// AppError carries an HTTP status alongside the message so the error
// handler middleware can map service failures without string matching.
type AppError struct {
	Code    int
	Message string
	Detail  interface{}
}

func (e *AppError) Error() string {
	return e.Message
}

func NewBadRequest(message string) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: message}
}

func NewBadRequestWithDetail(message string, detail interface{}) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: message, Detail: detail}
}

func NewNotFound(message string) *AppError {
	return &AppError{Code: fiber.StatusNotFound, Message: message}
}

func NewInternal(message string) *AppError {
	return &AppError{Code: fiber.StatusInternalServerError, Message: message}
}
