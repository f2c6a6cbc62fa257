package server

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldLabels maps request struct fields to their JSON names for error
// messages.
var fieldLabels = map[string]string{
	"ResumeText": "resume_text",
	"JobText":    "job_text",
	"JobURL":     "job_url",
}

// validationMessage renders a validator error as a client-facing message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request"
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fieldLabels[fe.Field()]
		if field == "" {
			field = strings.ToLower(fe.Field())
		}
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", field))
		case "min":
			parts = append(parts, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "max":
			parts = append(parts, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		case "url":
			parts = append(parts, fmt.Sprintf("%s must be a valid URL", field))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(parts, "; ")
}
