package field

import (
	"net/url"
	"strconv"
	"strings"
)

// IsFieldRequired reports whether a required column is missing its value.
// Empty strings, numeric zero, false and nil all count as missing. When
// required is false the answer is always false, whatever the value.
func IsFieldRequired(value any, required bool) bool {
	return required && isMissing(value)
}

// IsFieldMinValue reports whether value, coerced to an integer, is below min.
// Callers treat min == 0 as "no bound" and must not invoke this check for it.
func IsFieldMinValue(value any, min int) bool {
	return CoerceInt(value) < min
}

// IsFieldMaxValue reports whether value, coerced to an integer, is above max.
// Callers treat max == 0 as "no bound" and must not invoke this check for it.
func IsFieldMaxValue(value any, max int) bool {
	return CoerceInt(value) > max
}

// IsFieldMinLength reports whether a string value is shorter than minLength.
// Non-string values never trigger length errors.
func IsFieldMinLength(value any, minLength int) bool {
	s, ok := value.(string)
	return ok && len([]rune(s)) < minLength
}

// IsFieldMaxLength reports whether a string value is longer than maxLength.
// Non-string values never trigger length errors.
func IsFieldMaxLength(value any, maxLength int) bool {
	s, ok := value.(string)
	return ok && len([]rune(s)) > maxLength
}

// HasDisallowedCharacters reports whether a string value contains any
// character present in disallow. The disallow string is a character class,
// not a substring.
func HasDisallowedCharacters(value any, disallow string) bool {
	s, ok := value.(string)
	if !ok || disallow == "" {
		return false
	}
	return strings.ContainsAny(s, disallow)
}

// IsEmail reports whether value looks like local@domain.tld: at least one @,
// no whitespace, and a dot with something after it in the domain part. This
// is a UI hint, not an RFC 5322 validator.
func IsEmail(value any) bool {
	s, ok := value.(string)
	if !ok || s == "" {
		return false
	}
	if strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	at := strings.Index(s, "@")
	if at <= 0 {
		return false
	}
	domain := s[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// IsURL reports whether value parses as an absolute http or https URL.
func IsURL(value any) bool {
	s, ok := value.(string)
	if !ok || s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// CoerceInt converts a loosely typed value to an integer. Non-numeric values
// coerce to 0.
func CoerceInt(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float32:
		return int(v)
	case float64:
		return int(v)
	case string:
		s := strings.TrimSpace(v)
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		// Float-valued strings truncate toward zero, like parseInt.
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return int(f)
	default:
		return 0
	}
}

// isMissing mirrors the falsiness rules the dashboard relies on: nil, empty
// string, numeric zero and false are missing. Slices and maps are present
// even when empty, so an empty tag list does not trip the required check.
func isMissing(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case int:
		return v == 0
	case int32:
		return v == 0
	case int64:
		return v == 0
	case float32:
		return v == 0
	case float64:
		return v == 0
	default:
		return false
	}
}
