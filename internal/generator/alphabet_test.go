package generator

import (
	"strings"
	"testing"

	"github.com/vaultpass/passgen-go/internal/model"
)

func TestBuildAlphabet(t *testing.T) {
	tests := []struct {
		name    string
		classes model.CharacterClasses
		want    string
	}{
		{name: "default", classes: model.DefaultClasses(), want: lowercaseChars},
		{name: "uppercase and numbers", classes: model.CharacterClasses{Uppercase: true, Numbers: true}, want: uppercaseChars + numberChars},
		{name: "symbols only", classes: model.CharacterClasses{Symbols: true}, want: "!@#$%^&*()_+"},
		{
			name:    "all four in fixed order",
			classes: model.CharacterClasses{Lowercase: true, Uppercase: true, Numbers: true, Symbols: true},
			want:    uppercaseChars + lowercaseChars + numberChars + symbolChars,
		},
		{name: "none", classes: model.CharacterClasses{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildAlphabet(tt.classes); got != tt.want {
				t.Errorf("BuildAlphabet() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildAlphabetAllClassesSize(t *testing.T) {
	alphabet := BuildAlphabet(model.CharacterClasses{Lowercase: true, Uppercase: true, Numbers: true, Symbols: true})
	if len(alphabet) != 68 {
		t.Fatalf("alphabet length = %d, want 68", len(alphabet))
	}

	password, err := Generate(alphabet, 16)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if len(password) != 16 {
		t.Errorf("password length = %d, want 16", len(password))
	}
	for _, ch := range password {
		if !strings.ContainsRune(alphabet, ch) {
			t.Errorf("password contains %q outside the union alphabet", string(ch))
		}
	}
}
