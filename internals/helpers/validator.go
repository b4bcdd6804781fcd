// file: internals/helpers/validator.go
package helper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"perseverantia_backend/internals/constants"
)

var validate = newValidator()

// fest_grade bounds every participant grade to the fest-wide domain before any
// per-event range applies.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("fest_grade", func(fl validator.FieldLevel) bool {
		grade := fl.Field().Int()
		return grade >= constants.GradeFloor && grade <= constants.GradeCeiling
	})
	return v
}

// ValidateStruct runs the shared validator over a request DTO.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// FieldErrors flattens validator errors into the response shape used by
// JsonValidationError. Non-validator errors map to a single "request" entry.
func FieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["request"] = []string{err.Error()}
		return out
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		msg := fmt.Sprintf("failed on '%s'", fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("failed on '%s=%s'", fe.Tag(), fe.Param())
		}
		out[field] = append(out[field], msg)
	}
	return out
}
