package field

import "time"

// RuleKey names a validation option accepted by a field category.
type RuleKey string

// Validation option keys.
const (
	RuleRequired           RuleKey = "required"
	RuleMin                RuleKey = "min"
	RuleMax                RuleKey = "max"
	RuleMinLength          RuleKey = "minLength"
	RuleMaxLength          RuleKey = "maxLength"
	RuleDisallowCharacters RuleKey = "disallowCharacters"
	RuleBlacklist          RuleKey = "blacklist"
	RuleBetweenDates       RuleKey = "betweenDates"
	RuleMinItems           RuleKey = "minItems"
	RuleMaxItems           RuleKey = "maxItems"
)

// RuleSet declares which validation options a field category accepts, mapped
// to their defaults. A kind's defaults are by construction a subset of its
// declared options.
type RuleSet map[RuleKey]any

// Per-category rule sets. Numeric and length bounds default to 0, which the
// decision tables read as "bound disabled"; a legitimate zero bound cannot
// be expressed with this convention.
var (
	RequiredRules = RuleSet{RuleRequired: false}

	TextRules = RuleSet{
		RuleRequired:           false,
		RuleMinLength:          0,
		RuleMaxLength:          0,
		RuleDisallowCharacters: "",
	}

	NumberRules = RuleSet{
		RuleRequired: false,
		RuleMin:      0,
		RuleMax:      0,
	}

	InternetRules = RuleSet{
		RuleRequired:           false,
		RuleMinLength:          0,
		RuleMaxLength:          0,
		RuleDisallowCharacters: "",
		RuleBlacklist:          []string(nil),
	}

	DateTimeRules = RuleSet{
		RuleRequired:     false,
		RuleBetweenDates: (*DateRange)(nil),
	}

	// ItemsRules declares minItems/maxItems for tags and reference columns.
	// The bounds are accepted but not yet enforced by any validate function.
	ItemsRules = RuleSet{
		RuleRequired: false,
		RuleMinItems: 0,
		RuleMaxItems: 0,
	}
)

// DateRange bounds a date-time column. A zero From or To defaults to the
// validated value itself.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Rules is the validation option bag attached to a column. The zero value
// imposes no constraints.
type Rules struct {
	Required           bool       `json:"required,omitempty"`
	Min                int        `json:"min,omitempty"`
	Max                int        `json:"max,omitempty"`
	MinLength          int        `json:"minLength,omitempty"`
	MaxLength          int        `json:"maxLength,omitempty"`
	DisallowCharacters string     `json:"disallowCharacters,omitempty"`
	Blacklist          []string   `json:"blacklist,omitempty"`
	BetweenDates       *DateRange `json:"betweenDates,omitempty"`
	MinItems           int        `json:"minItems,omitempty"`
	MaxItems           int        `json:"maxItems,omitempty"`
}

// DefaultRules materializes a rule bag from the set's declared defaults.
func (rs RuleSet) DefaultRules() Rules {
	var r Rules
	if v, ok := rs[RuleRequired].(bool); ok {
		r.Required = v
	}
	if v, ok := rs[RuleMin].(int); ok {
		r.Min = v
	}
	if v, ok := rs[RuleMax].(int); ok {
		r.Max = v
	}
	if v, ok := rs[RuleMinLength].(int); ok {
		r.MinLength = v
	}
	if v, ok := rs[RuleMaxLength].(int); ok {
		r.MaxLength = v
	}
	if v, ok := rs[RuleDisallowCharacters].(string); ok {
		r.DisallowCharacters = v
	}
	if v, ok := rs[RuleBlacklist].([]string); ok {
		r.Blacklist = v
	}
	if v, ok := rs[RuleBetweenDates].(*DateRange); ok {
		r.BetweenDates = v
	}
	if v, ok := rs[RuleMinItems].(int); ok {
		r.MinItems = v
	}
	if v, ok := rs[RuleMaxItems].(int); ok {
		r.MaxItems = v
	}
	return r
}

// Allows reports whether the set declares the given option.
func (rs RuleSet) Allows(key RuleKey) bool {
	_, ok := rs[key]
	return ok
}
