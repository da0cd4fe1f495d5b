package handler

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// firstViolation turns a validation error into a client message naming
// the first failing field.
func firstViolation(err error) MessageResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return MessageResponse{Message: "invalid request body"}
	}

	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return MessageResponse{Message: field + " is required", Field: field}
	case "email":
		return MessageResponse{Message: field + " must be a valid email address", Field: field}
	case "min":
		return MessageResponse{Message: field + " must be at least " + fe.Param() + " characters", Field: field}
	default:
		return MessageResponse{Message: field + " is invalid", Field: field}
	}
}
