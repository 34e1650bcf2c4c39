package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/oficina/workshop/internal/core/domain"
)

// ruleMessages renders a failed tag. Argument 1 is the field, 2 the tag param.
var ruleMessages = map[string]string{
	"required": "%[1]s is required",
	"email":    "%[1]s must be a valid email",
	"gt":       "%[1]s must be greater than %[2]s",
	"min":      "%[1]s must be at least %[2]s characters",
	"max":      "%[1]s must be at most %[2]s characters",
	"oneof":    "%[1]s must be one of: %[2]s",
}

// StructValidator plugs go-playground/validator into echo and into the web
// forms. Field names come from the json tag, then the form tag.
type StructValidator struct {
	v *validator.Validate
}

func NewValidator() *StructValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	return &StructValidator{v: v}
}

func fieldName(f reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		if name, _, _ := strings.Cut(f.Tag.Get(key), ","); name != "" && name != "-" {
			return name
		}
	}
	return strings.ToLower(f.Name)
}

// Validate returns a domain validation error listing every failed field.
func (sv *StructValidator) Validate(i any) error {
	err := sv.v.Struct(i)
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return err
	}
	msgs := make([]string, len(fields))
	for i, fe := range fields {
		msgs[i] = describe(fe)
	}
	return domain.Invalid(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	tmpl, ok := ruleMessages[fe.Tag()]
	if !ok {
		return fe.Field() + " is invalid (" + fe.Tag() + ")"
	}
	return fmt.Sprintf(tmpl, fe.Field(), fe.Param())
}
