// Package failure carries the HTTP status a domain error should surface as.
package failure

import (
	"errors"
	"net/http"
)

// Failure pairs a client-facing message with the HTTP status it maps to.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

func (e *Failure) Error() string {
	return e.Message
}

func newFailure(code int, msg string) error {
	return &Failure{Code: code, Message: msg}
}

// BadRequest wraps a validation error. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return newFailure(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) error {
	return newFailure(http.StatusForbidden, msg)
}

// NotFound reports a missing booking, room or account; msg names which.
func NotFound(msg string) error {
	return newFailure(http.StatusNotFound, msg)
}

// Conflict reports a write refused because of existing state, such as an overlapping stay.
func Conflict(msg string) error {
	return newFailure(http.StatusConflict, msg)
}

// GetCode returns the status carried by err, or 500 for anything that is not a Failure.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
