package field

import (
	"fmt"
	"time"
)

func dateTimeKind() Kind {
	return Kind{
		Type:         DateTime,
		Title:        "Date & Time",
		Description:  "A calendar date with optional time of day",
		Icon:         "calendar",
		InitialState: "",
		Rules:        DateTimeRules,
		Validate:     validateDateTime,
	}
}

// validateDateTime checks required, then membership in the betweenDates
// window. Range columns (isRange option) only get the required check. A
// missing window bound defaults to the value itself, which makes the
// membership check vacuously true until explicit bounds are supplied.
func validateDateTime(value any, rules Rules, columnName string, opts Options) Result {
	if IsFieldRequired(value, rules.Required) {
		return Result{Value: value, Error: requiredMessage(columnName)}
	}
	if opts.Bool(OptionIsRange) {
		return Result{Value: value}
	}

	t, ok := parseDateTime(value)
	if !ok {
		return Result{Value: value}
	}

	from, to := t, t
	if rules.BetweenDates != nil {
		if !rules.BetweenDates.From.IsZero() {
			from = rules.BetweenDates.From
		}
		if !rules.BetweenDates.To.IsZero() {
			to = rules.BetweenDates.To
		}
	}
	if t.Before(from) || t.After(to) {
		return Result{Value: value, Error: dateRangeMessage(columnName, from, to)}
	}
	return Result{Value: value}
}

func dateRangeMessage(columnName string, from, to time.Time) string {
	return fmt.Sprintf("%s must be a date between %s and %s",
		columnName, from.Format("2006-01-02"), to.Format("2006-01-02"))
}

func parseDateTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case string:
		if v == "" {
			return time.Time{}, false
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
