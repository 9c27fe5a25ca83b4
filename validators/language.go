package validators

import (
	"errors"
	"strings"
)

var (
	ErrLanguageEmpty = errors.New("native and learning language must both be provided")
	ErrLanguagePair  = errors.New("native and learning language can't be the same")
)

// LanguagePairValidator rejects registrations where the user would be
// learning their own native language
func LanguagePairValidator(native, learning string) error {
	if native == "" || learning == "" {
		return ErrLanguageEmpty
	}

	if strings.EqualFold(native, learning) {
		return ErrLanguagePair
	}

	return nil
}
