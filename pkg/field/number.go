package field

import "fmt"

func numberKind() Kind {
	return Kind{
		Type:         Number,
		Title:        "Number",
		Description:  "A whole number",
		Icon:         "hash",
		InitialState: 0,
		Rules:        NumberRules,
		Validate:     validateNumber,
	}
}

func booleanKind() Kind {
	return Kind{
		Type:         Boolean,
		Title:        "Boolean",
		Description:  "A true or false toggle",
		Icon:         "toggle",
		InitialState: false,
		Rules:        RequiredRules,
		Validate:     validateBoolean,
	}
}

// validateNumber runs the numeric decision table: required, then bounds.
// A bound of 0 disables that check, so a real zero bound cannot be set.
func validateNumber(value any, rules Rules, columnName string, _ Options) Result {
	n := CoerceInt(value)
	switch {
	case IsFieldRequired(value, rules.Required):
		return Result{Value: n, Error: requiredMessage(columnName)}
	case rules.Min != 0 && IsFieldMinValue(n, rules.Min):
		return Result{Value: n, Error: boundsMessage(columnName, rules)}
	case rules.Max != 0 && IsFieldMaxValue(n, rules.Max):
		return Result{Value: n, Error: boundsMessage(columnName, rules)}
	}
	return Result{Value: n}
}

func validateBoolean(value any, rules Rules, columnName string, _ Options) Result {
	b, _ := value.(bool)
	if IsFieldRequired(value, rules.Required) {
		return Result{Value: b, Error: requiredMessage(columnName)}
	}
	return Result{Value: b}
}

func boundsMessage(columnName string, rules Rules) string {
	return fmt.Sprintf("%s must be a value between %d and %d", columnName, rules.Min, rules.Max)
}
