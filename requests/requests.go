// Package requests contains the per-operation request models for the Comgate
// gateway. Each model is built from a map of conventional snake_case
// attributes, translated to the gateway's wire naming where the two differ,
// validated before any network call, and serialized to a wire-keyed map with
// absent optionals omitted entirely.
package requests

import (
	"fmt"
	"strings"

	"github.com/alovak/comgate-go/internal/fieldtypes"
)

// ValidationError reports a request that failed field-level or cross-field
// validation. It is always raised locally, before any network call.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// String returns a pointer for optional string fields.
func String(s string) *string { return &s }

// Bool returns a pointer for optional bool fields.
func Bool(b bool) *bool { return &b }

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func setString(dst **string, field string, v any) error {
	s, err := fieldtypes.CoerceString(v)
	if err != nil {
		return validationErrorf("%s %s", field, err)
	}
	*dst = &s
	return nil
}

func setBool(dst **bool, field string, v any) error {
	b, err := fieldtypes.CoerceBool(v)
	if err != nil {
		return validationErrorf("%s %s", field, err)
	}
	*dst = &b
	return nil
}

func putString(m map[string]any, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}

func putBool(m map[string]any, key string, v *bool) {
	if v != nil {
		m[key] = *v
	}
}
