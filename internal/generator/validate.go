package generator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vaultpass/passgen-go/internal/model"
)

const (
	MinLength = 4
	MaxLength = 16

	FieldLength  = "length"
	FieldClasses = "classes"
)

const (
	MsgLengthRequired = "Length is required"
	MsgLengthNotNum   = "Length must be a number"
	MsgLengthTooShort = "Should be min of 4 characters"
	MsgLengthTooLong  = "Should be max of 16 characters"
	MsgLengthNotWhole = "Length must be a whole number"
	MsgNoClasses      = "Select at least one character type"
)

// ValidationError is a user-facing input error, shown inline next to Field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateLength parses the length field text and checks it lies in
// [MinLength, MaxLength].
func ValidateLength(input string) (int, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, lengthError(MsgLengthRequired)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, lengthError(MsgLengthNotNum)
	}
	if f < MinLength {
		return 0, lengthError(MsgLengthTooShort)
	}
	if f > MaxLength {
		return 0, lengthError(MsgLengthTooLong)
	}
	if f != math.Trunc(f) {
		return 0, lengthError(MsgLengthNotWhole)
	}

	return int(f), nil
}

// ValidateClasses rejects a selection with no class enabled, since it
// would produce an empty alphabet.
func ValidateClasses(c model.CharacterClasses) error {
	if !c.Any() {
		return &ValidationError{Field: FieldClasses, Message: MsgNoClasses}
	}
	return nil
}

func lengthError(msg string) *ValidationError {
	return &ValidationError{Field: FieldLength, Message: msg}
}
