package response

import (
	"errors"
	"net/http"

	"taxengine/pkg/apperror"
)

// Envelope is either a Success or a Failure; use a type switch to handle both
type Envelope interface {
	HTTPStatus() int
	envelope()
}

// Success wraps data returned to the client
type Success struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"-"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
}

// FieldError describes one rejected input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Failure wraps an error returned to the client
type Failure struct {
	Success    bool         `json:"success"`
	StatusCode int          `json:"status_code"`
	Message    string       `json:"message"`
	Errors     []FieldError `json:"errors,omitempty"`
}

func (s Success) HTTPStatus() int { return s.StatusCode }
func (f Failure) HTTPStatus() int { return f.StatusCode }

func (Success) envelope() {}
func (Failure) envelope() {}

// OK returns a 200 success envelope wrapping the data
func OK(message string, data interface{}) Success {
	return Success{Success: true, StatusCode: http.StatusOK, Message: message, Data: data}
}

// Created returns a 201 success envelope wrapping the data
func Created(message string, data interface{}) Success {
	return Success{Success: true, StatusCode: http.StatusCreated, Message: message, Data: data}
}

// Fail returns a failure envelope with the given status code
func Fail(statusCode int, message string, fieldErrors ...FieldError) Failure {
	return Failure{StatusCode: statusCode, Message: message, Errors: fieldErrors}
}

// FromError maps a service error into a failure envelope.
// Unexpected errors are reported as 500 with a generic message.
func FromError(err error) Failure {
	status := apperror.StatusCode(err)

	var ve *apperror.ValidationError
	if errors.As(err, &ve) && ve.Field != "" {
		return Fail(status, "Validation failed", FieldError{Field: ve.Field, Message: ve.Message})
	}
	if status == http.StatusInternalServerError {
		return Fail(status, "Internal server error")
	}
	return Fail(status, err.Error())
}

// IsSuccess reports which side of the envelope env is
func IsSuccess(env Envelope) bool {
	switch env.(type) {
	case Success, *Success:
		return true
	case Failure, *Failure:
		return false
	default:
		panic("response: unknown envelope type")
	}
}
