package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries a field -> message map so the client can
// attach each message to its form field.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	var msgs []string
	for field, msg := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("field '%s': %s", field, msg))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Validator wraps go-playground/validator with json tag names and
// Spanish user-facing messages.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Same tag gin's binding step reads, so one set of rules drives
	// both bind-time and explicit validation.
	v.SetTagName("binding")

	// Report field names as they appear on the wire, not as Go struct
	// field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Validate checks the struct and returns *ValidationError when any
// field fails.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	return v.format(validationErrors)
}

func (v *Validator) format(validationErrors validator.ValidationErrors) *ValidationError {
	fields := make(map[string]string)
	for _, fe := range validationErrors {
		fields[fe.Field()] = v.getErrorMessage(fe)
	}
	return &ValidationError{Errors: fields}
}

func (v *Validator) getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo es obligatorio"
	case "email":
		return "El correo electrónico no es válido"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Debe tener al menos %s caracteres", fe.Param())
		}
		return fmt.Sprintf("Debe ser al menos %s", fe.Param())
	case "max":
		return fmt.Sprintf("Debe ser como máximo %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Debe ser uno de: %s", strings.Replace(fe.Param(), " ", ", ", -1))
	case "uuid":
		return "Debe ser un identificador válido"
	default:
		return fmt.Sprintf("Valor inválido (regla '%s')", fe.Tag())
	}
}
