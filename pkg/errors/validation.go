package errors

import (
	"regexp"
	"unicode"
)

// MaxIDLength bounds box, pallete and board identifiers.
const MaxIDLength = 128

// idRegex matches identifiers that are safe as file names, Redis keys and
// URL path segments.
var idRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateID validates a box, pallete or board identifier.
//
// The rules are conservative because ids end up in file names and URLs:
//   - No empty ids
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of [MaxIDLength] characters
//
// kind names the thing being validated in the error message ("box", "pallete").
func ValidateID(kind, id string) error {
	if id == "" {
		return New(ErrCodeInvalidArgument, "%s id cannot be empty", kind)
	}

	if len(id) > MaxIDLength {
		return New(ErrCodeInvalidArgument, "%s id too long (max %d characters)", kind, MaxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidArgument, "%s id contains invalid control characters", kind)
		}
	}

	if !idRegex.MatchString(id) || containsDotDot(id) {
		return New(ErrCodeInvalidArgument, "invalid %s id: %q", kind, id)
	}

	return nil
}

func containsDotDot(s string) bool {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '.' && s[i+1] == '.' {
			return true
		}
	}
	return false
}
