// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator wraps a validator instance for Echo
type CustomValidator struct {
	validate *playground.Validate
}

// New creates a validator ready to be assigned to echo.Echo.Validator
func New() *CustomValidator {
	return &CustomValidator{
		validate: playground.New(),
	}
}

// Validate runs struct validation on the bound request
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
