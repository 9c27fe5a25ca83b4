package validators

import (
	"strings"
	"testing"
)

func TestPasswordValidator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		want     error
	}{
		{"valid", "Passw0rd!", nil},
		{"valid minimal", "Abcdef12", nil},
		{"empty", "", ErrPasswordEmpty},
		{"too short", "Ab1", ErrPasswordTooShort},
		{"too long", strings.Repeat("Aa1", 43), ErrPasswordTooLong},
		{"contains space", "Pass w0rd", ErrPasswordWhitespace},
		{"contains tab", "Pass\tw0rd1A", ErrPasswordWhitespace},
		{"no uppercase", "passw0rd", ErrPasswordWeak},
		{"no lowercase", "PASSW0RD", ErrPasswordWeak},
		{"no digit", "Password", ErrPasswordWeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PasswordValidator(tt.password); got != tt.want {
				t.Errorf("PasswordValidator(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}
