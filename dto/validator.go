package dto

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("notblank", validateNotBlank)

	// Report problems against the json field names, not the Go ones.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func GetValidator() *validator.Validate {
	return validate
}

// validateNotBlank rejects empty and all-whitespace strings.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// FormatValidationProblems collects every violated field into one map so a
// single response can enumerate all of them. Returns an empty map when err
// holds no field violations.
func FormatValidationProblems(err error) map[string][]string {
	problems := map[string][]string{}

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			var message string

			switch fieldError.Tag() {
			case "notblank", "required":
				message = "required"
			case "gt":
				message = "must be > " + fieldError.Param()
			case "min":
				message = "must be at least " + fieldError.Param()
			case "max":
				message = "must be at most " + fieldError.Param()
			default:
				message = "invalid"
			}

			field := fieldError.Field()
			problems[field] = append(problems[field], message)
		}
	}

	return problems
}

// ValidateItemRequest returns the per-field problem map for a draft. The
// draft is valid iff the map is empty.
func ValidateItemRequest(req ItemRequest) map[string][]string {
	if err := validate.Struct(req); err != nil {
		return FormatValidationProblems(err)
	}
	return map[string][]string{}
}
