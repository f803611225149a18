package errors

import (
	"strings"
	"unicode"
)

// ValidateID validates a shape or lane identifier.
//
// The validation rules are intentionally conservative:
//   - No empty ids
//   - No control characters
//   - Maximum length of 256 characters
//
// Document-level uniqueness checks are done separately by the board
// package.
func ValidateID(kind, id string) error {
	code := ErrCodeInvalidShape
	if kind == "lane" {
		code = ErrCodeInvalidLane
	}

	if id == "" {
		return New(code, "%s id cannot be empty", kind)
	}
	if len(id) > 256 {
		return New(code, "%s id too long (max 256 characters)", kind)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(code, "%s id contains invalid control characters", kind)
		}
	}
	return nil
}

// ValidateOutputFormat validates a render output format name.
func ValidateOutputFormat(format string, allowed []string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (expected one of %s)",
		format, strings.Join(allowed, ", "))
}
