package validator

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
)

const (
	ErrRequired       = "is required"
	ErrInvalidEmail   = "must be a valid email address"
	ErrNumeric        = "must contain only digits"
	ErrMinLength      = "must be at least %s characters long"
	ErrMaxLength      = "must be at most %s characters long"
	ErrGreaterThan    = "must be greater than %s"
	ErrInvalidTag     = "must be lower-case letters, digits and hyphens"
	ErrInvalidRating  = "must be one of G, PG, PG13, NC16, M18, R21"
	ErrDefaultInvalid = "is invalid"
)

// Ratings lists the content ratings a movie may carry.
var Ratings = []string{"G", "PG", "PG13", "NC16", "M18", "R21"}

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("tag", validateTag)
	validator.RegisterValidation("rating", validateRating)

	return validator
}

func validateTag(fl validator.FieldLevel) bool {
	return slug.IsSlug(fl.Field().String())
}

func validateRating(fl validator.FieldLevel) bool {
	return slices.Contains(Ratings, fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrInvalidEmail
	case "numeric":
		return ErrNumeric
	case "min":
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "gt":
		return fmt.Sprintf(ErrGreaterThan, err.Param())
	case "tag":
		return ErrInvalidTag
	case "rating":
		return ErrInvalidRating
	default:
		return ErrDefaultInvalid
	}
}

// Describe flattens the result of Validate.Struct into a single line such as
// "Email must be a valid email address; Phone is required". Errors that are
// not validation errors are returned as-is.
func Describe(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	issues := make([]string, len(validationErrs))
	for i, fe := range validationErrs {
		issues[i] = fmt.Sprintf("%s %s", fe.Field(), ValidationMessage(fe))
	}

	return strings.Join(issues, "; ")
}
