// Package field normalizes loosely typed form input into card fields.
package field

import "strings"

var trueTokens = map[string]struct{}{
	"true": {},
	"on":   {},
	"1":    {},
	"yes":  {},
}

// NormalizeString returns nil for missing, empty or whitespace-only input and the
// trimmed value otherwise.
func NormalizeString(v *string) *string {
	if v == nil {
		return nil
	}
	return FromForm(*v)
}

// FromForm applies NormalizeString to a raw form value.
func FromForm(v string) *string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ToBoolean reports whether v is one of the accepted truthy tokens, ignoring case.
// Non-string values are false.
func ToBoolean(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, ok = trueTokens[strings.ToLower(s)]
	return ok
}
