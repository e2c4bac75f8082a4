package field

import (
	"fmt"
	"strings"
)

func textKind() Kind {
	return Kind{
		Type:         Text,
		Title:        "Text",
		Description:  "A single line of text",
		Icon:         "text",
		InitialState: "",
		Rules:        TextRules,
		Validate:     validateText,
	}
}

func titleKind() Kind {
	k := textKind().Derive(Title, "Title", "The primary text column of a collection", "heading")
	rs := RuleSet{}
	for key, def := range TextRules {
		rs[key] = def
	}
	rs[RuleRequired] = true
	k.Rules = rs
	return k
}

func paragraphKind() Kind {
	k := textKind().Derive(Paragraph, "Paragraph", "Multiple lines of plain text", "paragraph")
	return k
}

// validateText runs the text decision table: required, disallowed characters,
// then length bounds. A length bound of 0 disables that check.
func validateText(value any, rules Rules, columnName string, _ Options) Result {
	s := strings.TrimSpace(toString(value))
	switch {
	case IsFieldRequired(s, rules.Required):
		return Result{Value: s, Error: requiredMessage(columnName)}
	case HasDisallowedCharacters(s, rules.DisallowCharacters):
		return Result{Value: s, Error: disallowMessage(rules.DisallowCharacters)}
	case rules.MinLength != 0 && IsFieldMinLength(s, rules.MinLength):
		return Result{Value: s, Error: lengthMessage(columnName, rules)}
	case rules.MaxLength != 0 && IsFieldMaxLength(s, rules.MaxLength):
		return Result{Value: s, Error: lengthMessage(columnName, rules)}
	}
	return Result{Value: s}
}

func requiredMessage(columnName string) string {
	return fmt.Sprintf("%s field is required", columnName)
}

func disallowMessage(disallow string) string {
	return fmt.Sprintf("Must not include %s characters", disallow)
}

func lengthMessage(columnName string, rules Rules) string {
	return fmt.Sprintf("%s must be between %d and %d characters long",
		columnName, rules.MinLength, rules.MaxLength)
}

func toString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
