package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// ValidationError reports malformed tax rule / tax group input the caller can fix
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// InvalidAmountError reports a base amount that cannot be taxed
type InvalidAmountError struct {
	Amount string
	Reason string
}

func (e *InvalidAmountError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid amount %q: %s", e.Amount, e.Reason)
	}
	return fmt.Sprintf("invalid amount %q", e.Amount)
}

// NotFoundError reports a tax group or tax rule that does not exist (or is unusable)
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Resource + " not found"
	}
	return fmt.Sprintf("%s '%s' not found", e.Resource, e.ID)
}

func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// NewNegativeAmount rejects base amounts below zero
func NewNegativeAmount(amount decimal.Decimal) *InvalidAmountError {
	return &InvalidAmountError{Amount: amount.String(), Reason: "must not be negative"}
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsInvalidAmount(err error) bool {
	var target *InvalidAmountError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// StatusCode maps an error to the HTTP status the handlers answer with
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidation(err), IsInvalidAmount(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
