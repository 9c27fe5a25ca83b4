package validators

import (
	"errors"
	"unicode"
)

var (
	ErrPasswordEmpty      = errors.New("no password provided")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong    = errors.New("password is too long")
	ErrPasswordWhitespace = errors.New("password can't contain whitespace")
	ErrPasswordWeak       = errors.New("password must contain an uppercase letter, a lowercase letter and a digit")
)

func PasswordValidator(p string) error {
	if p == "" {
		return ErrPasswordEmpty
	}

	if len(p) < 8 {
		return ErrPasswordTooShort
	}

	if len(p) > 128 {
		return ErrPasswordTooLong
	}

	var hasUpper, hasLower, hasDigit bool

	for _, r := range p {
		switch {
		case unicode.IsSpace(r):
			return ErrPasswordWhitespace
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit {
		return ErrPasswordWeak
	}

	return nil
}
