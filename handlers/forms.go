package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type loginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type customerForm struct {
	Name  string `validate:"required,min=4"`
	Email string `validate:"required,email"`
}

type changePasswordForm struct {
	OldPassword        string `validate:"required"`
	NewPassword        string `validate:"required,min=4"`
	ConfirmNewPassword string `validate:"required,eqfield=NewPassword"`
}

type currentAccountForm struct {
	InitialBalance float64 `validate:"gte=0"`
	OverDraft      float64 `validate:"gte=0"`
}

type savingAccountForm struct {
	InitialBalance float64 `validate:"gte=0"`
	InterestRate   float64 `validate:"gte=0"`
}

// operationForm backs both the debit and credit dialogs.
type operationForm struct {
	Amount      float64 `validate:"required,gt=0"`
	Description string  `validate:"required"`
}

type transferForm struct {
	AccountDestination string  `validate:"required"`
	Amount             float64 `validate:"required,gt=0"`
	Description        string
}

// fieldErrors flattens validation failures into per-field messages the
// templates show next to the offending input.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return out
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out[fe.Field()] = "This field is required."
		case "min":
			out[fe.Field()] = fmt.Sprintf("Must be at least %s characters.", fe.Param())
		case "email":
			out[fe.Field()] = "Must be a valid email address."
		case "eqfield":
			out[fe.Field()] = "Passwords do not match."
		case "gt":
			out[fe.Field()] = fmt.Sprintf("Must be greater than %s.", fe.Param())
		case "gte":
			out[fe.Field()] = fmt.Sprintf("Must be at least %s.", fe.Param())
		default:
			out[fe.Field()] = "Invalid value."
		}
	}
	return out
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}
