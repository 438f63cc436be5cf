package generator

import "github.com/vaultpass/passgen-go/internal/model"

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+"
)

// BuildAlphabet concatenates the enabled character classes in fixed order:
// uppercase, lowercase, numbers, symbols. It returns "" when nothing is enabled.
func BuildAlphabet(c model.CharacterClasses) string {
	var alphabet string

	if c.Uppercase {
		alphabet += uppercaseChars
	}
	if c.Lowercase {
		alphabet += lowercaseChars
	}
	if c.Numbers {
		alphabet += numberChars
	}
	if c.Symbols {
		alphabet += symbolChars
	}

	return alphabet
}
