package analyzer

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput marks caller-contract violations: a missing URL or a
// payload that is not shaped like extracted structured data. Malformed
// markup inside the payload is never an error, it becomes findings.
var ErrInvalidInput = errors.New("invalid input")

var validate = validator.New()

// Input is the extracted structured data of one page, as delivered by
// the external extraction layer.
type Input struct {
	URL        string            `json:"url" validate:"required,url"`
	LinkedData []any             `json:"linkedData"`
	Microdata  []any             `json:"microdata,omitempty"`
	RDFa       []any             `json:"rdfa,omitempty"`
	OpenGraph  map[string]string `json:"openGraph,omitempty"`
}

// ValidateInput checks the caller contract before analysis starts.
func ValidateInput(in *Input) error {
	if in == nil {
		return fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, formatValidationError(err))
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}
	for _, e := range validationErrs {
		switch e.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", e.Field())
		case "url":
			return fmt.Sprintf("%s must be a valid URL", e.Field())
		default:
			return fmt.Sprintf("%s failed validation (%s)", e.Field(), e.Tag())
		}
	}
	return err.Error()
}
