package services

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/coursehub/backend/libs/apperrors"
	"github.com/go-playground/validator/v10"
)

// custom validation tags
const httpURLTag = "http_prefix"

var (
	validate     = newValidator()
	httpURLRegex = regexp.MustCompile(`(?i)^https?://`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Use JSON tag names in errors instead of Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation(httpURLTag, func(fl validator.FieldLevel) bool {
		return httpURLRegex.MatchString(fl.Field().String())
	})

	return v
}

// validationError turns validator errors into a Validation error.
// messages maps "field" or "field.tag" to the client-facing text; the first match wins.
func validationError(err error, messages map[string]string, fallback string) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.Validation(fallback)
	}

	for _, fe := range fieldErrs {
		if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
			return apperrors.Validation(msg)
		}
		if msg, ok := messages[fe.Field()]; ok {
			return apperrors.Validation(msg)
		}
	}
	return apperrors.Validation(fallback)
}
