package field

import (
	"fmt"
	"slices"
	"strings"
)

func emailKind() Kind {
	return Kind{
		Type:         Email,
		Title:        "Email",
		Description:  "An email address",
		Icon:         "at-sign",
		InitialState: "",
		Rules:        InternetRules,
		Validate:     validateEmail,
	}
}

func urlKind() Kind {
	return Kind{
		Type:         URL,
		Title:        "URL",
		Description:  "A web address",
		Icon:         "link",
		InitialState: "",
		Rules:        InternetRules,
		Validate:     validateURL,
	}
}

// validateEmail runs the internet decision table: required, format,
// disallowed characters, length bounds, then the denylist. Format is only
// checked for non-empty values so an optional empty email stays valid.
func validateEmail(value any, rules Rules, columnName string, _ Options) Result {
	s := strings.TrimSpace(toString(value))
	switch {
	case IsFieldRequired(s, rules.Required):
		return Result{Value: s, Error: requiredMessage(columnName)}
	case s != "" && !IsEmail(s):
		return Result{Value: s, Error: "Not a valid email address"}
	case HasDisallowedCharacters(s, rules.DisallowCharacters):
		return Result{Value: s, Error: disallowMessage(rules.DisallowCharacters)}
	case rules.MinLength != 0 && IsFieldMinLength(s, rules.MinLength):
		return Result{Value: s, Error: lengthMessage(columnName, rules)}
	case rules.MaxLength != 0 && IsFieldMaxLength(s, rules.MaxLength):
		return Result{Value: s, Error: lengthMessage(columnName, rules)}
	case slices.Contains(rules.Blacklist, s):
		return Result{Value: s, Error: denylistMessage(s)}
	}
	return Result{Value: s}
}

func validateURL(value any, rules Rules, columnName string, _ Options) Result {
	s := strings.TrimSpace(toString(value))
	switch {
	case IsFieldRequired(s, rules.Required):
		return Result{Value: s, Error: requiredMessage(columnName)}
	case s != "" && !IsURL(s):
		return Result{Value: s, Error: "Not a valid URL"}
	case HasDisallowedCharacters(s, rules.DisallowCharacters):
		return Result{Value: s, Error: disallowMessage(rules.DisallowCharacters)}
	case rules.MinLength != 0 && IsFieldMinLength(s, rules.MinLength):
		return Result{Value: s, Error: lengthMessage(columnName, rules)}
	case rules.MaxLength != 0 && IsFieldMaxLength(s, rules.MaxLength):
		return Result{Value: s, Error: lengthMessage(columnName, rules)}
	case slices.Contains(rules.Blacklist, s):
		return Result{Value: s, Error: denylistMessage(s)}
	}
	return Result{Value: s}
}

func denylistMessage(value string) string {
	return fmt.Sprintf("%s is not allowed", value)
}
