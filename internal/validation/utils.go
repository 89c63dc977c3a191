// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or value ranges) defined in struct tags
// and extracts validation errors into a format the client can
// understand
package validation

import (
	"strings"
	"unicode"
)

// fieldName converts a Go field name to the snake_case key clients send,
// e.g. RoomsCount -> rooms_count.
func fieldName(goName string) string {
	var b strings.Builder
	runes := []rune(goName)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
