// Package forms validates user submissions before they hit the API. The
// server enforces its own rules; this only catches what the original forms
// rejected before submitting (empty required fields, out-of-range ratings, a
// release year in the future).
package forms

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// A release year may not be later than the current year.
	_ = v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		return int(fl.Field().Int()) <= time.Now().Year()
	})
	return v
}

type GameForm struct {
	Name        string  `validate:"required"`
	Price       float64 `validate:"gte=0"`
	Year        int     `validate:"required,gt=1950,notfuture"`
	Description string  `validate:"required"`
	CategoryID  int     `validate:"required,gt=0"`
	CompanyID   int     `validate:"required,gt=0"`
}

type CompanyForm struct {
	Name string `validate:"required"`
}

type ProfileForm struct {
	Name string `validate:"required"`
}

type CredentialsForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type RegistrationForm struct {
	Name      string `validate:"required"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=6"`
	BirthDate string `validate:"required"`
}

type ReviewForm struct {
	GameID  int    `validate:"required,gt=0"`
	Rating  int    `validate:"required,min=1,max=5"`
	Comment string `validate:"required"`
}

// Check validates a form and rewrites the first violation into a message fit
// for the transient error notice.
func Check(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) && len(invalid) > 0 {
		f := invalid[0]
		switch f.Tag() {
		case "required":
			return fmt.Errorf("%s is required", f.Field())
		case "email":
			return fmt.Errorf("%s is not a valid e-mail address", f.Field())
		case "notfuture":
			return fmt.Errorf("%s cannot be later than %d", f.Field(), time.Now().Year())
		case "min", "max", "gt", "gte":
			return fmt.Errorf("%s is out of range", f.Field())
		}
		return fmt.Errorf("%s is invalid", f.Field())
	}
	return err
}
