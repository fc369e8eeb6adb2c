package form

import (
	"fmt"
	"strings"
)

// Validate checks one value against spec. It has no side effects.
//
// A required blank value fails with "<label> cannot be empty."; a non-blank value
// that does not match the spec's pattern fails with the spec's hint.
func Validate(spec FieldSpec, value string, required bool) Result {
	trimmed := strings.TrimSpace(value)

	if required && trimmed == "" {
		return Result{Message: fmt.Sprintf("%s cannot be empty.", spec.Label)}
	}
	if trimmed != "" && spec.Pattern != nil && !spec.Pattern.MatchString(trimmed) {
		return Result{Message: spec.Hint}
	}
	return Result{Valid: true}
}
