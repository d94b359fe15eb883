package service

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/foodygo/identity-server/internal/model"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 100
	maxEmailLength    = 255
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateCredentials(email, password string) error {
	err := validation.Errors{
		"email":    validateEmail(email),
		"password": validatePassword(password),
	}.Filter()
	if err != nil {
		return fmt.Errorf("%w: %s", model.ErrInvalidArgument, err.Error())
	}
	return nil
}

func validateEmail(email string) error {
	return validation.Validate(email, validation.Required, validation.Length(3, maxEmailLength), is.Email)
}

func validatePassword(password string) error {
	return validation.Validate(password, validation.Required, validation.Length(minPasswordLength, maxPasswordLength))
}
