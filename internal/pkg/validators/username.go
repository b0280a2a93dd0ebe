package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// UsernameTag is the validator tag registered for UsernameValidation.
const UsernameTag = "username"

var usernamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]+$`)

// UsernameValidation accepts usernames that start with a letter and contain only letters and digits.
func UsernameValidation(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

// New returns a validator with the project's custom rules registered.
func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation(UsernameTag, UsernameValidation); err != nil {
		return nil, err
	}
	return validate, nil
}
