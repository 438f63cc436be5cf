package model

import "encoding/json"

// CharacterClasses holds the four character class toggles of the generator screen.
type CharacterClasses struct {
	Lowercase bool `json:"lowercase"`
	Uppercase bool `json:"uppercase"`
	Numbers   bool `json:"numbers"`
	Symbols   bool `json:"symbols"`
}

// DefaultClasses returns the screen defaults: lowercase only.
func DefaultClasses() CharacterClasses {
	return CharacterClasses{Lowercase: true}
}

// Any reports whether at least one class is enabled.
func (c CharacterClasses) Any() bool {
	return c.Lowercase || c.Uppercase || c.Numbers || c.Symbols
}

// LengthInput is the raw text of the length field.
// It accepts both a JSON string ("8") and a JSON number (8).
type LengthInput string

func (l *LengthInput) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = LengthInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*l = LengthInput(n.String())
	return nil
}

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> keep current toggle) and explicit false.
type GenerateRequest struct {
	Length    LengthInput `json:"length"`
	Uppercase *bool       `json:"uppercase"`
	Lowercase *bool       `json:"lowercase"`
	Numbers   *bool       `json:"numbers"`
	Symbols   *bool       `json:"symbols"`
}

// Apply overlays the explicitly set toggles of the request on c.
func (r GenerateRequest) Apply(c CharacterClasses) CharacterClasses {
	if r.Uppercase != nil {
		c.Uppercase = *r.Uppercase
	}
	if r.Lowercase != nil {
		c.Lowercase = *r.Lowercase
	}
	if r.Numbers != nil {
		c.Numbers = *r.Numbers
	}
	if r.Symbols != nil {
		c.Symbols = *r.Symbols
	}
	return c
}

// ToggleRequest flips a single character class.
type ToggleRequest struct {
	Class string `json:"class"`
}

// ScreenState is the display state of the generator screen.
type ScreenState struct {
	Classes   CharacterClasses `json:"classes"`
	Password  string           `json:"password"`
	Generated bool             `json:"generated"`
}

// ScreenResponse is returned by every screen endpoint.
// State is the signed token the client echoes back in X-Screen-State. It keeps
// only the toggles, so Password and Generated are set only on the response to
// the generate call itself.
type ScreenResponse struct {
	ScreenState
	Length int    `json:"length,omitempty"`
	State  string `json:"state"`
}

// ErrorResponse represents an API error, with the offending field for validation errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}
