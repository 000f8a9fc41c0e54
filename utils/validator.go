package utils

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// RegisterCustomValidations registers custom validation rules on gin's
// binding engine.
func RegisterCustomValidations(v *validator.Validate) {
	v.RegisterValidation("timeformat", validateTimeFormat)
	v.RegisterValidation("slug", validateSlug)
}

// validateTimeFormat checks if string is valid HH:MM format
func validateTimeFormat(fl validator.FieldLevel) bool {
	timeStr := fl.Field().String()
	_, err := time.Parse("15:04", timeStr)
	return err == nil
}

// validateSlug checks lowercase alphanumeric segments joined by single
// hyphens, e.g. "computer-science".
func validateSlug(fl validator.FieldLevel) bool {
	return IsValidSlug(fl.Field().String())
}

func IsValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

func TranslateValidationError(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		var messages []string
		for _, fe := range ve {
			field := fe.Field()
			switch fe.Tag() {
			case "required":
				messages = append(messages, field+" is required")
			case "email":
				messages = append(messages, "invalid email format")
			case "min":
				messages = append(messages, field+" must be at least "+fe.Param()+" characters")
			case "max":
				messages = append(messages, field+" must be at most "+fe.Param()+" characters")
			case "numeric":
				messages = append(messages, field+" must contain only numbers")
			case "gt":
				messages = append(messages, field+" must be greater than "+fe.Param())
			case "gte":
				messages = append(messages, field+" must be at least "+fe.Param())
			case "lte":
				messages = append(messages, field+" must be at most "+fe.Param())
			case "timeformat":
				messages = append(messages, field+" must be in HH:MM format (e.g., 14:00)")
			case "slug":
				messages = append(messages, field+" must be lowercase alphanumeric segments joined by hyphens")
			case "oneof":
				messages = append(messages, field+" must be one of: "+fe.Param())
			default:
				messages = append(messages, field+" is invalid")
			}
		}
		return strings.Join(messages, ", ")
	}
	return err.Error()
}
