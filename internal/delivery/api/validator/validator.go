// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator validates bound request structs.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports JSON field names and knows the
// domain enums.
func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})
	_ = v.RegisterValidation("service_type", func(fl validator.FieldLevel) bool {
		return entity.ServiceType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("appointment_status", func(fl validator.FieldLevel) bool {
		return entity.AppointmentStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := entity.ParseSlot(fl.Field().String())

		return err == nil
	})
	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := entity.ParseDate(fl.Field().String())

		return err == nil
	})

	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator. The first failing field becomes a
// VALIDATION_FAILED error naming that field.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.WithStack(err)
	}

	first := fieldErrs[0]

	return domainerrors.NewValidationError(first.Field(), describe(first))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "uuid":
		return "must be a UUID"
	case "hhmm":
		return "must be HH:MM"
	case "date":
		return "must be YYYY-MM-DD"
	case "service_type":
		return "unknown service type"
	case "appointment_status":
		return "unknown appointment status"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
