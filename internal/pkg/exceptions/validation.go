package exceptions

import (
	"errors"
	"pod-tracker-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrDevInvalidInput
	}

	firstErr := validationErrors[0]
	customMessage, ok := constvars.CustomValidationErrorMessages[firstErr.Tag()]
	if !ok {
		customMessage = "is invalid"
	}
	if constvars.TagsWithParams[firstErr.Tag()] {
		customMessage = strings.Replace(customMessage, "%s", firstErr.Param(), 1)
	}
	return firstErr.Field() + " " + customMessage
}

// HasFailedTag reports whether any field failed the given validation tag.
func HasFailedTag(err error, tag string) bool {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return false
	}
	for _, fieldErr := range validationErrors {
		if fieldErr.Tag() == tag {
			return true
		}
	}
	return false
}
