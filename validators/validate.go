package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		// Report fields by their JSON names so error keys match the request body.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Struct validates v and returns field errors keyed by JSON path, or nil.
func Struct(v interface{}) map[string]string {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"body": "Invalid request body!"}
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fieldKey(fe)] = message(fe.Field(), fe)
	}
	return out
}

// Var validates a single value against tag and returns the message for the field
// called name, or "" when the value passes.
func Var(name string, value interface{}, tag string) string {
	err := instance().Var(value, tag)
	if err == nil {
		return ""
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Sprintf("%s is invalid!", name)
	}
	return message(name, fieldErrs[0])
}

// fieldKey drops the root struct name from the namespace: "req.questions[0].prompt" -> "questions[0].prompt".
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required!", field)
	case "email":
		return "Invalid email!"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must have at least %s items!", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters long!", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long!", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s!", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s format!", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater!", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid!", field)
	}
}
