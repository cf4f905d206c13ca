package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
)

// Validator checks request structs against their validate tags
type Validator struct {
	validate *validator.Validate
}

// GetValidator returns the shared validator, built on first use
var GetValidator = sync.OnceValue(func() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("tool", func(fl validator.FieldLevel) bool {
		return domain.Tool(fl.Field().String()).Valid()
	})
	return &Validator{validate: v}
})

// jsonFieldName reports fields by their wire name so errors match the request body
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(f.Name)
	}
	return name
}

// ValidateStruct validates s using its tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// validationMessages holds fixed messages per tag; tags with a parameter are formatted in FormatValidationError
var validationMessages = map[string]string{
	"required":    "This field is required",
	"tool":        "Invalid tool",
	"excludesall": "Contains invalid characters",
}

// FormatValidationError maps each failing field to a message without
// exposing Go struct names
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"error": "Invalid request format"}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg, ok := validationMessages[fe.Tag()]
		switch {
		case ok:
		case fe.Tag() == "min":
			msg = fmt.Sprintf("Must be at least %s", fe.Param())
		case fe.Tag() == "max":
			msg = fmt.Sprintf("Must be at most %s", fe.Param())
		default:
			msg = "Invalid value"
		}
		out[fe.Field()] = msg
	}
	return out
}
