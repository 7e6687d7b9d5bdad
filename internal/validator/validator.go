package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired  = "is required"
	ErrEmail     = "must be a valid email address"
	ErrMinValue  = "must be at least %s"
	ErrMaxValue  = "must be at most %s"
	ErrIdList    = "must be a comma-separated list of positive integers"
	ErrDate      = "must be a date formatted as YYYY-MM-DD"
	ErrTokenSize = "must be a valid activation token"
	ErrPassword  = "must be 8 to 25 characters long and include at least one uppercase letter, " +
		"one lowercase letter, one number, and one special character (!@#$%^&*)"
)

var hasSpecialRgx = regexp.MustCompile(`[!@#$%^&*]`)

func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("idlist", validateIdList)

	return validate
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 25 {
		return false
	}

	containsUpper, containsLower, containsDigit, containsSpecial := false, false, false, false

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			containsUpper = true
		case unicode.IsLower(ch):
			containsLower = true
		case unicode.IsDigit(ch):
			containsDigit = true
		case hasSpecialRgx.MatchString(string(ch)):
			containsSpecial = true
		}
	}

	return containsUpper && containsLower && containsDigit && containsSpecial
}

// validateIdList accepts comma-separated positive integer ids, e.g. "1,3,5".
// Used by the play list filters (genres, actors).
func validateIdList(fl validator.FieldLevel) bool {
	_, err := ParseIdList(fl.Field().String())
	return err == nil
}

// ParseIdList splits a comma-separated id list into ints. An empty string
// yields a nil slice.
func ParseIdList(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))

	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", part, err)
		}
		if id < 1 {
			return nil, fmt.Errorf("id must be positive, got %d", id)
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrEmail
	case "min":
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "idlist":
		return ErrIdList
	case "datetime":
		return ErrDate
	case "len":
		return ErrTokenSize
	case "password":
		return ErrPassword
	default:
		return "is invalid"
	}
}
