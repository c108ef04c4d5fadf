package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldError is one itemized validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const passwordSpecials = "!@#$%^&*"

// NewValidator returns a validator with the password rules registered and
// field names reported by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	rules := map[string]func(rune) bool{
		"hasupper":   unicode.IsUpper,
		"haslower":   unicode.IsLower,
		"hasdigit":   unicode.IsDigit,
		"hasspecial": func(r rune) bool { return strings.ContainsRune(passwordSpecials, r) },
	}
	for tag, pred := range rules {
		pred := pred
		// Registration only fails for empty tags.
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return strings.IndexFunc(fl.Field().String(), pred) >= 0
		})
	}
	return v
}

// validationErrors converts validator output to FieldErrors. Non-validation
// errors yield nil.
func validationErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, FieldError{Field: e.Field(), Message: fieldMessage(e)})
	}
	return out
}

func fieldMessage(e validator.FieldError) string {
	label := strings.ToUpper(e.Field()[:1]) + e.Field()[1:]
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", label, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", label, e.Param())
	case "email":
		return "Invalid email format"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", label, e.Param())
	case "hasupper":
		return fmt.Sprintf("%s must contain at least one uppercase letter", label)
	case "haslower":
		return fmt.Sprintf("%s must contain at least one lowercase letter", label)
	case "hasdigit":
		return fmt.Sprintf("%s must contain at least one number", label)
	case "hasspecial":
		return fmt.Sprintf("%s must contain at least one special character", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
