package handler

import (
	"time"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// pathID parses the ":id" route parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError("id", "must be a UUID")
	}

	return id, nil
}

// bindAndValidate decodes the JSON body into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		return domainerrors.NewValidationError("body", "malformed JSON")
	}

	return errors.WithStack(c.Validate(req))
}

// queryBindError turns a fluent binder failure into a validation error on the offending parameter.
func queryBindError(err error) error {
	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		return domainerrors.NewValidationError(bindErr.Field, "must be a number")
	}

	return errors.WithStack(err)
}

// optionalFloat binds a query parameter that may be absent.
func optionalFloat(c echo.Context, name string) (*float64, error) {
	if c.QueryParam(name) == "" {
		return nil, nil
	}

	var v float64
	if err := echo.QueryParamsBinder(c).Float64(name, &v).BindError(); err != nil {
		return nil, queryBindError(err)
	}

	return &v, nil
}

// queryDate parses a required YYYY-MM-DD query parameter.
func queryDate(c echo.Context, name string) (time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Time{}, domainerrors.NewValidationError(name, "is required")
	}

	date, err := entity.ParseDate(raw)
	if err != nil {
		return time.Time{}, domainerrors.NewValidationError(name, "must be YYYY-MM-DD")
	}

	return date, nil
}
