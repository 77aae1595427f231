package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var seatRowRgx = regexp.MustCompile(`^\s*[A-Za-z]\s*$`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("seat_row", validateSeatRow)

	return validator
}

// validateSeatRow accepts a single letter in either case, surrounding blanks
// are trimmed later.
func validateSeatRow(fl validator.FieldLevel) bool {
	return seatRowRgx.MatchString(fl.Field().String())
}

const (
	ErrRequired = "is required"
	ErrSeatRow  = "must be a single letter"
	ErrMinValue = "must be at least %s"
	ErrMaxLen   = "must be at most %s characters long"
	ErrGtValue  = "must be greater than %s"
	ErrInvalid  = "is invalid"
)

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "gt":
		return fmt.Sprintf(ErrGtValue, err.Param())
	case "min", "gte":
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxLen, err.Param())
	case "seat_row":
		return ErrSeatRow
	default:
		return ErrInvalid
	}
}
