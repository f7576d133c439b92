// Package fieldtypes holds the reusable value constraints shared by the
// request models: coercions to the primitive wire types plus the handful of
// format rules the gateway enforces globally.
package fieldtypes

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"
)

// MinPriceUnits is the gateway-wide minimum price in the smallest currency
// unit (100 haléř = 1 CZK). Currency-specific minimums are enforced by the
// gateway itself.
const MinPriceUnits = 100

// Label length bounds required by the gateway.
const (
	LabelMinLen = 1
	LabelMaxLen = 16
)

var (
	dateRe       = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	expirationRe = regexp.MustCompile(`^\d+[mhd]$`)
	urlRe        = regexp.MustCompile(`^https?://`)
)

// CoerceString converts a scalar attribute value to its string form.
func CoerceString(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case int:
		return strconv.Itoa(s), nil
	case int64:
		return strconv.FormatInt(s, 10), nil
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(s), nil
	default:
		return "", fmt.Errorf("cannot coerce %T to string", v)
	}
}

// CoerceInt converts integer kinds, whole floats and numeric strings.
func CoerceInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("cannot coerce %v to integer", n)
		}
		return int(n), nil
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, fmt.Errorf("cannot coerce %q to integer", n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("cannot coerce %T to integer", v)
	}
}

// CoerceBool accepts booleans only; flag fields are never parsed from
// strings so a stray "false" cannot silently enable anything.
func CoerceBool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("cannot coerce %T to bool", v)
	}
	return b, nil
}

// MinPrice coerces to an integer and enforces the global price minimum.
func MinPrice(v any) (int, error) {
	n, err := CoerceInt(v)
	if err != nil {
		return 0, err
	}
	if n < MinPriceUnits {
		return 0, fmt.Errorf("must be at least %d", MinPriceUnits)
	}
	return n, nil
}

// Label requires a string of 1-16 characters. The bound is a character
// limit on a human-visible label, so it counts runes, not bytes.
func Label(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("must be a string, got %T", v)
	}
	if n := utf8.RuneCountInString(s); n < LabelMinLen || n > LabelMaxLen {
		return "", fmt.Errorf("must be %d-%d characters", LabelMinLen, LabelMaxLen)
	}
	return s, nil
}

// DateString checks the YYYY-MM-DD shape. Calendar validity is a separate
// concern owned by the models that need it.
func DateString(s string) error {
	if !dateRe.MatchString(s) {
		return fmt.Errorf("must be in YYYY-MM-DD format")
	}
	return nil
}

// ExpirationTime checks the <digits><unit> duration shape, unit m/h/d.
func ExpirationTime(s string) error {
	if !expirationRe.MatchString(s) {
		return fmt.Errorf(`must be a number followed by m, h or d, e.g. "30m", "10h", "2d"`)
	}
	return nil
}

// URL checks for an http(s) scheme prefix.
func URL(s string) error {
	if !urlRe.MatchString(s) {
		return fmt.Errorf("must start with http:// or https://")
	}
	return nil
}
