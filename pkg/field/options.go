package field

// OptionKey names a kind-specific column option.
type OptionKey string

// Column option keys.
const (
	OptionDefaultValue     OptionKey = "defaultValue"
	OptionIsRange          OptionKey = "isRange"
	OptionShowTime         OptionKey = "showTime"
	OptionNumberOfMonths   OptionKey = "numberOfMonths"
	OptionItems            OptionKey = "items"
	OptionSelectType       OptionKey = "selectType"
	OptionToggleVisibility OptionKey = "toggleVisibility"
	OptionCollection       OptionKey = "collection"
)

// Options is the option bag attached to a column. It is owned by the column
// definition and mutated only through an OptionsEditor.
type Options map[OptionKey]any

// With returns a copy of the bag with one key changed. Sibling keys survive.
func (o Options) With(key OptionKey, value any) Options {
	merged := make(Options, len(o)+1)
	for k, v := range o {
		merged[k] = v
	}
	merged[key] = value
	return merged
}

// Clone returns a shallow copy of the bag.
func (o Options) Clone() Options {
	if o == nil {
		return nil
	}
	c := make(Options, len(o))
	for k, v := range o {
		c[k] = v
	}
	return c
}

// Bool reads a boolean option, false when absent or mistyped.
func (o Options) Bool(key OptionKey) bool {
	v, _ := o[key].(bool)
	return v
}

// Int reads an integer option, 0 when absent or mistyped.
func (o Options) Int(key OptionKey) int {
	switch v := o[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

// String reads a string option, "" when absent or mistyped.
func (o Options) String(key OptionKey) string {
	v, _ := o[key].(string)
	return v
}
