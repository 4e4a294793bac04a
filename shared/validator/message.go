package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":      "{field} is required",
		"required_with": "{field} is required",
		"gte":           "{field} must be greater than or equal to {param}",
		"lte":           "{field} must be less than or equal to {param}",
		"oneof":         "{field} must be one of {param}",
		"max":           "{field} must be at most {param} characters",
		"min":           "{field} must be at least {param} characters",
		"len":           "{field} must be exactly {param} characters",
		"numeric":       "{field} must contain digits only",
		"email":         "{field} must be a valid email address",
		"uuid":          "{field} must be a valid identifier",
		"dive":          "{field} contains an invalid value",
		"hhmm":          "{field} must be a time in HH:mm format",
		"isodate":       "{field} must be a date in yyyy-MM-dd format",
		"personname":    "{field} must contain letters only",
		"phoneprefix":   "{field} must be an international prefix such as +39",
		"pastdate":      "{field} must be in the past",
	}
)

func render(valErr val.FieldError) string {
	errStr := messages[valErr.Tag()]
	if errStr == "" {
		return ""
	}

	errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
	errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

	return errStr
}

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			if errStr := render(valErr); errStr != "" {
				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}

func fields(err error) map[string]string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return nil
	}

	out := make(map[string]string, len(valErrors))

	for _, valErr := range valErrors {
		if _, seen := out[valErr.Field()]; seen {
			continue
		}

		errStr := render(valErr)
		if errStr == "" {
			errStr = valErr.Error()
		}

		out[valErr.Field()] = errStr
	}

	return out
}
