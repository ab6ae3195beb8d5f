// Package apperr defines the error taxonomy shared by every usecase:
// validation failures carry a specific kind and message, store and network
// failures are wrapped as Internal so nothing leaks to the caller.
package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Kind int

const (
	KindNotFound Kind = iota
	KindConflict
	KindUnauthorized
	KindForbidden
	KindUploadFailure
	KindInternal
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func UploadFailure(err error) *Error {
	return &Error{Kind: KindUploadFailure, Message: "File upload failed", Err: err}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Something Went Wrong", Err: err}
}

// StatusCode maps an error to its HTTP status. Unknown errors are treated as
// internal so handlers never surface raw store failures.
func StatusCode(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	case KindUploadFailure:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// UserMessage returns the message safe to show to the caller.
func UserMessage(err error) string {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return "Something Went Wrong"
	}
	return appErr.Message
}

func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
