package validator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	usecasecontract "github.com/mikiasgoitom/Storefront/internal/usecase/contract"
)

const minPasswordLength = 8

// AppValidator implements the usecasecontract.IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

var _ usecasecontract.IValidator = (*AppValidator)(nil)

// NewValidator creates a validator backed by go-playground/validator.
func NewValidator() usecasecontract.IValidator {
	return &AppValidator{validate: validator.New()}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidateURL checks that s is an absolute http(s) URL.
func (av *AppValidator) ValidateURL(s string) error {
	if err := av.validate.Var(s, "required,http_url"); err != nil {
		return fmt.Errorf("invalid url: %q", s)
	}
	return nil
}

type passwordRule struct {
	check   func(string) bool
	message string
}

var passwordRules = []passwordRule{
	{func(s string) bool { return len(s) >= minPasswordLength }, fmt.Sprintf("password must be at least %d characters long", minPasswordLength)},
	{containsLetter, "password must contain at least one letter"},
	{containsDigit, "password must contain at least one number"},
	{func(s string) bool { return strings.TrimSpace(s) == s }, "password must not start or end with whitespace"},
}

// ValidatePasswordStrength returns the first password rule that fails.
func (av *AppValidator) ValidatePasswordStrength(password string) error {
	for _, rule := range passwordRules {
		if !rule.check(password) {
			return fmt.Errorf("%s", rule.message)
		}
	}
	return nil
}

// RegisterCustomValidators registers the password tags used by request DTOs
// with gin's binding validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("containsletter", func(fl validator.FieldLevel) bool {
			return containsLetter(fl.Field().String())
		})
		_ = v.RegisterValidation("containsdigit", func(fl validator.FieldLevel) bool {
			return containsDigit(fl.Field().String())
		})
	}
}

func containsLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}

func containsDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}
