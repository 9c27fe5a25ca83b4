package validators

import "testing"

func TestLanguagePairValidator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		native   string
		learning string
		want     error
	}{
		{"valid pair", "English", "Spanish", nil},
		{"same language", "English", "English", ErrLanguagePair},
		{"same ignoring case", "english", "English", ErrLanguagePair},
		{"missing native", "", "Spanish", ErrLanguageEmpty},
		{"missing learning", "English", "", ErrLanguageEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LanguagePairValidator(tt.native, tt.learning); got != tt.want {
				t.Errorf("LanguagePairValidator(%q, %q) = %v, want %v", tt.native, tt.learning, got, tt.want)
			}
		})
	}
}
