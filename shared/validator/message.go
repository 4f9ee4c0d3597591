package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "{field} is required",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"gt":       "{field} must be greater than {param}",
	"min":      "{field} must be at least {param}",
	"max":      "{field} must be at most {param}",
	"oneof":    "{field} must be one of {param}",
	"email":    "{field} must be a valid email address",
	"date":     "{field} must be a date in YYYY-MM-DD format",
	"phone":    "{field} must be a valid phone number",
	"dive":     "{field} contains an invalid value",
	"uuid":     "{field} must be a valid UUID",
	"nefield":  "{field} must differ from {param}",
}

// message renders the first rule violation that has a template.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			continue
		}

		return strings.NewReplacer("{field}", valErr.Field(), "{param}", valErr.Param()).Replace(template)
	}

	return valErrors.Error()
}
