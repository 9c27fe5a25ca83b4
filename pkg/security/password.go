// Package security contains everything related to the security of user data
package security

import (
	"golang.org/x/crypto/bcrypt"
)

const hashCost = 12

type PasswordHasher struct {
	Cost int
}

func NewHasher() *PasswordHasher {
	return &PasswordHasher{Cost: hashCost}
}

func (h *PasswordHasher) GenerateFromPassword(p string) (string, error) {
	// bcrypt only looks at the first 72 bytes. Truncate explicitly so
	// longer passwords hash instead of erroring and still verify later
	b := []byte(p)
	if len(b) > 72 {
		b = b[:72]
	}

	hash, err := bcrypt.GenerateFromPassword(b, h.Cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPasswd compares a password p with the stored encoded hash e
func (h *PasswordHasher) VerifyPasswd(p, e string) (ok bool, err error) {
	b := []byte(p)
	if len(b) > 72 {
		b = b[:72]
	}

	err = bcrypt.CompareHashAndPassword([]byte(e), b)
	if err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
