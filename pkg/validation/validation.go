package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Basic phone validation (numbers, spaces, +, -, parentheses)
var phoneRegex = regexp.MustCompile(`^[\d\s+\-()]+$`)

var validate = newValidator()

// newValidator builds the validator instance shared by all schemas.
// Field names in error output use the json tag so they match the wire format.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("phone_chars", validPhone)

	return v
}

// validPhone validates loose phone number structure. Empty or
// whitespace-only values pass; use required when the field is mandatory.
func validPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if strings.TrimSpace(val) == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}

// FieldErrors maps a json field name to the message of its first violated
// constraint. An empty map means the value passed validation.
type FieldErrors map[string]string

// collectFieldErrors converts validator output into per-field messages.
// Validation does not short-circuit across fields: every invalid field is
// reported in one pass so callers can display all of them simultaneously.
func collectFieldErrors(err error, messages map[string]map[string]string) FieldErrors {
	fieldErrors := FieldErrors{}
	if err == nil {
		return fieldErrors
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors["_"] = err.Error()
		return fieldErrors
	}

	for _, e := range validationErrors {
		field := e.Field()
		if _, seen := fieldErrors[field]; seen {
			continue // keep the first violated constraint per field
		}
		fieldErrors[field] = messageFor(messages, field, e.Tag())
	}

	return fieldErrors
}

func messageFor(messages map[string]map[string]string, field, tag string) string {
	if byTag, ok := messages[field]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
	}
	return "El valor introducido no es válido"
}
